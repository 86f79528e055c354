package api

import (
	"reflect"
	"regexp"
	"strings"
	"testing"

	"github.com/dmitrijs2005/gophstore/internal/api/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// messageFields maps each proto message in the contract to its json names.
func messageFields(t *testing.T) map[string][]string {
	t.Helper()
	blocks := regexp.MustCompile(`(?s)message (\w+) \{(.*?)\}`).FindAllStringSubmatch(proto.Contract, -1)
	require.NotEmpty(t, blocks)

	fieldRe := regexp.MustCompile(`json_name = "(\w+)"`)
	out := make(map[string][]string, len(blocks))
	for _, b := range blocks {
		var names []string
		for _, f := range fieldRe.FindAllStringSubmatch(b[2], -1) {
			names = append(names, f[1])
		}
		out[b[1]] = names
	}
	return out
}

func TestContract_DeclaresEveryMethod(t *testing.T) {
	for _, m := range StorefrontService_ServiceDesc.Methods {
		assert.Contains(t, proto.Contract, "rpc "+m.MethodName+"(", m.MethodName)
	}
	for _, s := range StorefrontService_ServiceDesc.Streams {
		assert.Regexp(t, `rpc `+s.StreamName+`\(\w+\) returns \(stream \w+\)`, proto.Contract)
	}
	assert.Contains(t, proto.Contract, "package "+strings.Split(ServiceName, ".")[0]+";")
}

func TestContract_MessagesMatchGoTypes(t *testing.T) {
	fields := messageFields(t)

	for _, msg := range []any{
		PingRequest{}, PingResponse{}, RegisterRequest{}, RegisterResponse{},
		LoginRequest{}, SessionResponse{}, RefreshTokenRequest{}, LogoutRequest{},
		LogoutResponse{}, GetProfileRequest{}, Profile{}, UpdateProfileRequest{},
		UpdateProfileResponse{}, CreateProductRequest{}, CreateProductResponse{},
		MarkSoldRequest{}, MarkSoldResponse{}, RequestImageUploadRequest{},
		RequestImageUploadResponse{}, GetImageURLRequest{}, GetImageURLResponse{},
		WatchProductsRequest{}, Product{}, ProductSnapshot{},
	} {
		typ := reflect.TypeOf(msg)
		want, ok := fields[typ.Name()]
		if !assert.True(t, ok, "message %s missing from contract", typ.Name()) {
			continue
		}

		var got []string
		for i := 0; i < typ.NumField(); i++ {
			got = append(got, strings.Split(typ.Field(i).Tag.Get("json"), ",")[0])
		}
		assert.Equal(t, want, got, typ.Name())
	}
}
