// Package netx uploads product images straight to object storage through
// presigned URLs issued by the server.
package netx

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// HTTPDoer is the part of *http.Client used here.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// PutPresigned PUTs body to a presigned URL. Any status other than 200 is
// an error carrying the response body for diagnostics.
func PutPresigned(ctx context.Context, c HTTPDoer, url, contentType string, body io.Reader) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, body)
	if err != nil {
		return err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("upload failed: %s; body: %s", resp.Status, string(b))
	}
	return nil
}
