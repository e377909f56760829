package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/adampresley/photovault/pkg/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

/*
API is the subset of the S3 client used by S3Store.
*/
type API interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3StoreConfig struct {
	Bucket string
	Client API
}

type S3Store struct {
	bucket string
	client API
}

func NewS3Store(config S3StoreConfig) (*S3Store, error) {
	if config.Client == nil {
		return nil, fmt.Errorf("s3 client is required")
	}

	if config.Bucket == "" {
		return nil, fmt.Errorf("bucket name is required")
	}

	return &S3Store{
		bucket: config.Bucket,
		client: config.Client,
	}, nil
}

/*
ListAll returns every object in the bucket, following continuation tokens
until the listing is exhausted.
*/
func (s *S3Store) ListAll(ctx context.Context) ([]models.StoreEntry, error) {
	var (
		err  error
		page *s3.ListObjectsV2Output
	)

	result := []models.StoreEntry{}

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
	})

	for paginator.HasMorePages() {
		if page, err = paginator.NextPage(ctx); err != nil {
			return nil, classify(fmt.Errorf("error listing bucket '%s': %w", s.bucket, err))
		}

		for _, obj := range page.Contents {
			if obj.Key == nil {
				continue
			}

			result = append(result, models.StoreEntry{
				Key:          aws.ToString(obj.Key),
				Size:         aws.ToInt64(obj.Size),
				LastModified: aws.ToTime(obj.LastModified),
			})
		}
	}

	return result, nil
}

func (s *S3Store) Get(ctx context.Context, key string) (Object, error) {
	var (
		err error
		out *s3.GetObjectOutput
	)

	out, err = s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		return Object{}, classify(fmt.Errorf("error getting object '%s': %w", key, err))
	}

	return Object{
		Body:        out.Body,
		ContentType: aws.ToString(out.ContentType),
		Size:        aws.ToInt64(out.ContentLength),
	}, nil
}

/*
Put writes an object, replacing any existing object with the same key.
A negative size leaves the content length for the SDK to work out.
*/
func (s *S3Store) Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}

	if size >= 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return classify(fmt.Errorf("error putting object '%s': %w", key, err))
	}

	return nil
}

func (s *S3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		return classify(fmt.Errorf("error deleting object '%s': %w", key, err))
	}

	return nil
}

func classify(err error) error {
	if isNotFound(err) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}

func isNotFound(err error) bool {
	var (
		noSuchKey *types.NoSuchKey
		notFound  *types.NotFound
		apiErr    smithy.APIError
	)

	if errors.As(err, &noSuchKey) || errors.As(err, &notFound) {
		return true
	}

	if errors.As(err, &apiErr) {
		code := apiErr.ErrorCode()
		return code == "NotFound" || code == "NoSuchKey" || code == "404"
	}

	return false
}
