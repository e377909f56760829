package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/adampresley/photovault/pkg/models"
	"github.com/aws/smithy-go"
)

var (
	ErrNotFound    = fmt.Errorf("object not found")
	ErrUnavailable = fmt.Errorf("object store unavailable")
)

/*
ObjectStore is the set of bucket operations the site needs. Every error
returned wraps either ErrNotFound or ErrUnavailable.
*/
type ObjectStore interface {
	ListAll(ctx context.Context) ([]models.StoreEntry, error)
	Get(ctx context.Context, key string) (Object, error)
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
}

type Object struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

/*
Message returns the text of a store error suitable for showing to a user.
When the error came from the S3 API the service's own message is used.
*/
func Message(err error) string {
	var apiErr smithy.APIError

	if errors.As(err, &apiErr) {
		if msg := apiErr.ErrorMessage(); msg != "" {
			return msg
		}

		return apiErr.ErrorCode()
	}

	return err.Error()
}
