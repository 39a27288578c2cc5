package minio

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/hupe1980/mstledger/blobstore"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyAndNotFound(t *testing.T) {
	s := NewStore(nil, "bucket", "ledger/")
	assert.Equal(t, "ledger/result/perf/abc", s.key("result/perf/abc"))

	assert.True(t, isNotFound(minio.ErrorResponse{Code: "NoSuchKey"}))
	assert.False(t, isNotFound(minio.ErrorResponse{Code: "AccessDenied"}))
	assert.False(t, isNotFound(errors.New("network down")))
}

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	client, err := minio.New("localhost:9000", &minio.Options{
		Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
		Secure: false,
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := context.Background()
	if _, err = client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	bucket := "test-mstledger"
	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	store := NewStore(client, bucket, "test-prefix/")

	data := []byte("1\t0\t0.0\t100000.0\t10\t20\t1\tabc\t0\t1\n")
	require.NoError(t, store.Put(ctx, "result/corr/abc", data))

	got, err := blobstore.ReadAll(ctx, store, "result/corr/abc")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	blob, err := store.Open(ctx, "result/corr/abc")
	require.NoError(t, err)
	rc, err := blob.ReadRange(ctx, 8, 8)
	require.NoError(t, err)
	part, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "100000.0", string(part))
	require.NoError(t, blob.Close())

	names, err := store.List(ctx, "result/corr/")
	require.NoError(t, err)
	assert.Contains(t, names, "result/corr/abc")

	require.NoError(t, store.Delete(ctx, "result/corr/abc"))
	_, err = store.Open(ctx, "result/corr/abc")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
