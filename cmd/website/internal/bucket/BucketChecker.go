package bucket

import (
	"fmt"
	"log/slog"

	"github.com/adampresley/adamgokit/s3"
	"github.com/adampresley/adamgokit/s3/createbucketoptions"
)

type BucketEnsurer interface {
	EnsureBucketExists() error
}

type BucketCheckerConfig struct {
	AwsBucket string
	AwsRegion string
	S3Client  s3.S3Client
}

type BucketChecker struct {
	awsBucket string
	awsRegion string
	s3Client  s3.S3Client
}

func NewBucketChecker(config BucketCheckerConfig) BucketChecker {
	return BucketChecker{
		awsBucket: config.AwsBucket,
		awsRegion: config.AwsRegion,
		s3Client:  config.S3Client,
	}
}

/*
EnsureBucketExists creates the photo bucket when it is missing. This is
mostly useful against LocalStack or MinIO during development.
*/
func (c BucketChecker) EnsureBucketExists() error {
	var (
		err    error
		exists bool
	)

	exists, err = c.s3Client.BucketExists(c.awsBucket)

	if err != nil {
		return fmt.Errorf("error ensuring bucket '%s' exists: %w", c.awsBucket, err)
	}

	if exists {
		slog.Debug("bucket found", "bucketName", c.awsBucket)
		return nil
	}

	slog.Info("creating bucket", "bucketName", c.awsBucket, "region", c.awsRegion)

	err = c.s3Client.CreateBucket(
		c.awsBucket,
		createbucketoptions.WithRegion(c.awsRegion),
	)

	if err != nil {
		return fmt.Errorf("error creating bucket '%s': %w", c.awsBucket, err)
	}

	return nil
}
