// Package products validates and writes new products, and marks existing
// ones sold.
package products

import (
	"context"
	"errors"
	"fmt"
	"math"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gophstore/internal/client/models"
	"github.com/dmitrijs2005/gophstore/internal/common"
	"github.com/dmitrijs2005/gophstore/internal/netx"
)

var (
	ErrNoSession    = errors.New("no active session")
	ErrInvalidName  = fmt.Errorf("%w: name is required", common.ErrorValidation)
	ErrInvalidPrice = fmt.Errorf("%w: price must be a number >= 0", common.ErrorValidation)
)

type Sessions interface {
	Current() models.Session
}

type Client interface {
	CreateProduct(ctx context.Context, p models.NewProduct) (string, error)
	MarkSold(ctx context.Context, id string) error
	RequestImageUpload(ctx context.Context) (key, url string, err error)
}

// Form is the add-product screen's state. It is cleared only after a
// successful write.
type Form struct {
	Name      string
	Price     string
	ImagePath string
}

type Writer struct {
	sessions Sessions
	client   Client
	http     netx.HTTPDoer
}

func NewWriter(s Sessions, c Client, h netx.HTTPDoer) *Writer {
	if h == nil {
		h = http.DefaultClient
	}
	return &Writer{sessions: s, client: c, http: h}
}

// ParsePrice accepts a decimal comma: the first ',' is read as '.'.
func ParsePrice(raw string) (float64, error) {
	s := strings.TrimSpace(strings.Replace(raw, ",", ".", 1))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, ErrInvalidPrice
	}
	return v, nil
}

// Validate checks f without touching the network.
func Validate(f Form) (models.NewProduct, error) {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return models.NewProduct{}, ErrInvalidName
	}
	price, err := ParsePrice(f.Price)
	if err != nil {
		return models.NewProduct{}, err
	}
	return models.NewProduct{Name: name, Price: price}, nil
}

// Submit writes the product described by f for the signed-in user and
// returns its id. On success f is cleared; on any failure it is untouched.
func (w *Writer) Submit(ctx context.Context, f *Form) (string, error) {
	if !w.sessions.Current().IsAuthenticated {
		return "", ErrNoSession
	}

	p, err := Validate(*f)
	if err != nil {
		return "", err
	}

	if path := strings.TrimSpace(f.ImagePath); path != "" {
		key, err := w.uploadImage(ctx, path)
		if err != nil {
			return "", fmt.Errorf("image upload: %w", err)
		}
		p.ImageRef = key
	}

	id, err := w.client.CreateProduct(ctx, p)
	if err != nil {
		return "", err
	}

	*f = Form{}
	return id, nil
}

func (w *Writer) MarkSold(ctx context.Context, id string) error {
	if !w.sessions.Current().IsAuthenticated {
		return ErrNoSession
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: product id is required", common.ErrorValidation)
	}
	return w.client.MarkSold(ctx, id)
}

func (w *Writer) uploadImage(ctx context.Context, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	key, url, err := w.client.RequestImageUpload(ctx)
	if err != nil {
		return "", err
	}

	if err := netx.PutPresigned(ctx, w.http, url, mime.TypeByExtension(filepath.Ext(path)), file); err != nil {
		return "", err
	}
	return key, nil
}
