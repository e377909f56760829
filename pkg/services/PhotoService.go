package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/adampresley/photovault/pkg/albums"
	"github.com/adampresley/photovault/pkg/store"
	"github.com/alitto/pond/v2"
)

const (
	DefaultMaxUploadWorkers = 4
)

type PhotoServicer interface {
	Get(ctx context.Context, key string) (store.Object, error)
	Upload(ctx context.Context, albumID string, files []UploadFile) UploadResult
	Delete(ctx context.Context, key string) (string, error)
}

/*
UploadFile is one file from an upload form. Open is called only when the
file has been accepted.
*/
type UploadFile struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

type UploadResult struct {
	Uploaded int
	Warnings []string
	Errors   []string
}

type PhotoServiceConfig struct {
	MaxUploadWorkers int
	Store            store.ObjectStore
}

type PhotoService struct {
	maxUploadWorkers int
	store            store.ObjectStore
}

type uploadOutcome struct {
	uploaded bool
	warning  string
	err      string
}

func NewPhotoService(config PhotoServiceConfig) PhotoService {
	if config.MaxUploadWorkers <= 0 {
		config.MaxUploadWorkers = DefaultMaxUploadWorkers
	}

	return PhotoService{
		maxUploadWorkers: config.MaxUploadWorkers,
		store:            config.Store,
	}
}

func (s PhotoService) Get(ctx context.Context, key string) (store.Object, error) {
	return s.store.Get(ctx, key)
}

/*
Upload stores a batch of files in an album. Every file is handled on its
own: unsupported files produce a warning and failed writes produce an
error, but neither stops the rest of the batch. Warnings and errors are
reported in the order the files were given.
*/
func (s PhotoService) Upload(ctx context.Context, albumID string, files []UploadFile) UploadResult {
	outcomes := make([]uploadOutcome, len(files))
	pool := pond.NewPool(s.maxUploadWorkers, pond.WithContext(ctx))

	for index, file := range files {
		key, err := albums.BuildUploadKey(albumID, file.Filename)

		if err != nil {
			if file.Filename != "" {
				outcomes[index].warning = fmt.Sprintf("'%s' is not a supported format.", file.Filename)
			}

			continue
		}

		outcomes[index].err = fmt.Sprintf("Failed to upload %s: upload was cancelled", albums.BareFilename(key))

		pool.Submit(func() {
			outcomes[index] = s.put(ctx, key, file)
		})
	}

	_ = pool.Stop().Wait()

	result := UploadResult{
		Warnings: []string{},
		Errors:   []string{},
	}

	for _, outcome := range outcomes {
		if outcome.uploaded {
			result.Uploaded++
		}

		if outcome.warning != "" {
			result.Warnings = append(result.Warnings, outcome.warning)
		}

		if outcome.err != "" {
			result.Errors = append(result.Errors, outcome.err)
		}
	}

	return result
}

func (s PhotoService) put(ctx context.Context, key string, file UploadFile) uploadOutcome {
	var (
		err  error
		body io.ReadCloser
	)

	filename := albums.BareFilename(key)

	if body, err = file.Open(); err != nil {
		slog.Error("error opening uploaded file", "error", err, "filename", file.Filename)
		return uploadOutcome{err: fmt.Sprintf("Failed to upload %s: %s", filename, err.Error())}
	}

	defer body.Close()

	contentType := albums.ContentTypeFor(file.ContentType, filename)

	if err = s.store.Put(ctx, key, body, file.Size, contentType); err != nil {
		slog.Error("error uploading photo", "error", err, "key", key)
		return uploadOutcome{err: fmt.Sprintf("Failed to upload %s: %s", filename, store.Message(err))}
	}

	slog.Info("uploaded photo", "key", key, "contentType", contentType, "size", file.Size)
	return uploadOutcome{uploaded: true}
}

/*
Delete removes a photo and returns the album it belonged to, so the caller
can send the user back there whether or not the delete worked.
*/
func (s PhotoService) Delete(ctx context.Context, key string) (string, error) {
	albumID := albums.OwnerAlbumOf(key)

	if err := s.store.Delete(ctx, key); err != nil {
		return albumID, fmt.Errorf("error deleting photo: %w", err)
	}

	return albumID, nil
}
