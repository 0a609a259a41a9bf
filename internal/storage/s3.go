package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/abnerteste26-bot/group-champs/internal/apperr"
	"github.com/abnerteste26-bot/group-champs/internal/config"
)

// HeadObjectAPI is the part of the S3 client the validator uses.
type HeadObjectAPI interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
}

// S3Validator checks references with HeadObject against an S3-compatible bucket.
type S3Validator struct {
	client  HeadObjectAPI
	bucket  string
	baseURL string
}

// NewS3Validator creates a validator over client.
func NewS3Validator(client HeadObjectAPI, bucket, publicBaseURL string) *S3Validator {
	return &S3Validator{client: client, bucket: bucket, baseURL: publicBaseURL}
}

// NewS3Client builds an S3 client from storage configuration. A custom
// endpoint (R2, MinIO) switches to path-style addressing.
func NewS3Client(ctx context.Context, cfg config.StorageConfig) (*s3.Client, error) {
	sdkCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load object store config: %w", err)
	}

	return s3.NewFromConfig(sdkCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// New returns the validator matching cfg: S3 when a bucket is configured,
// permissive otherwise.
func New(ctx context.Context, cfg config.StorageConfig) (ReferenceValidator, error) {
	if !cfg.Enabled() {
		return NewPermissive(cfg.PublicBaseURL), nil
	}
	client, err := NewS3Client(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewS3Validator(client, cfg.Bucket, cfg.PublicBaseURL), nil
}

// Validate implements ReferenceValidator.
func (v *S3Validator) Validate(ctx context.Context, ref string) error {
	if err := CheckReference(ref); err != nil {
		return err
	}

	_, err := v.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(v.bucket),
		Key:    aws.String(ref),
	})
	if err == nil {
		return nil
	}

	var notFound *types.NotFound
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &notFound) || errors.As(err, &noSuchKey) {
		return ErrObjectNotFound
	}
	return apperr.Transient(fmt.Errorf("head object %s: %w", ref, err))
}

// PublicURL implements ReferenceValidator.
func (v *S3Validator) PublicURL(ref string) string {
	return publicURL(v.baseURL, ref)
}
