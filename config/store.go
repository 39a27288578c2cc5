package config

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hupe1980/mstledger/blobstore"
	miniostore "github.com/hupe1980/mstledger/blobstore/minio"
	s3store "github.com/hupe1980/mstledger/blobstore/s3"
	"github.com/hupe1980/mstledger/codec"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// OpenStore builds the blob store described by cfg: the backend, wrapped in
// a RateLimitedStore when a request rate is set and in a CodecStore when a
// codec other than none is set.
func OpenStore(ctx context.Context, cfg *Config) (blobstore.BlobStore, error) {
	sc := cfg.Store

	var store blobstore.BlobStore
	switch sc.Backend {
	case BackendLocal:
		store = blobstore.NewLocalStore(sc.Root)
	case BackendMemory:
		store = blobstore.NewMemoryStore()
	case BackendMinIO:
		client, err := minio.New(sc.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(sc.AccessKey, sc.SecretKey, ""),
			Secure: sc.UseSSL,
			Region: sc.Region,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create minio client: %w", err)
		}
		store = miniostore.NewStore(client, sc.Bucket, sc.Prefix)
	case BackendS3:
		client, err := newS3Client(ctx, sc)
		if err != nil {
			return nil, err
		}
		store = s3store.NewStore(client, sc.Bucket, sc.Prefix)
	default:
		return nil, fmt.Errorf("unknown store backend %q", sc.Backend)
	}

	if sc.RequestsPerSecond > 0 {
		store = blobstore.NewRateLimitedStore(store, sc.RequestsPerSecond, sc.Burst)
	}

	c, ok := codec.ByName(cfg.Codec)
	if !ok {
		return nil, fmt.Errorf("unknown codec %q", cfg.Codec)
	}
	if _, plain := c.(codec.None); !plain {
		store = blobstore.NewCodecStore(store, c)
	}
	return store, nil
}

func newS3Client(ctx context.Context, sc StoreConfig) (*s3.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if sc.Region != "" {
		opts = append(opts, awsconfig.WithRegion(sc.Region))
	}
	if sc.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			awscreds.NewStaticCredentialsProvider(sc.AccessKey, sc.SecretKey, "")))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if sc.Endpoint != "" {
			o.BaseEndpoint = aws.String(sc.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}
