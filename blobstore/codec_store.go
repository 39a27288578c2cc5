package blobstore

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hupe1980/mstledger/codec"
)

// CodecStore compresses blobs on Put and decompresses them on Open. Stored
// names carry the codec's extension; callers use the plain names.
type CodecStore struct {
	inner BlobStore
	codec codec.Codec
}

// NewCodecStore wraps inner with c.
func NewCodecStore(inner BlobStore, c codec.Codec) *CodecStore {
	return &CodecStore{inner: inner, codec: c}
}

func (s *CodecStore) stored(name string) string { return name + s.codec.Ext() }

// Open reads and decompresses the whole blob.
func (s *CodecStore) Open(ctx context.Context, name string) (Blob, error) {
	packed, err := ReadAll(ctx, s.inner, s.stored(name))
	if err != nil {
		return nil, err
	}
	data, err := s.codec.Decompress(packed)
	if err != nil {
		return nil, fmt.Errorf("blobstore: decompress %s: %w", name, err)
	}
	return &bytesBlob{data: data}, nil
}

func (s *CodecStore) Put(ctx context.Context, name string, data []byte) error {
	packed, err := s.codec.Compress(data)
	if err != nil {
		return fmt.Errorf("blobstore: compress %s: %w", name, err)
	}
	return s.inner.Put(ctx, s.stored(name), packed)
}

func (s *CodecStore) Delete(ctx context.Context, name string) error {
	return s.inner.Delete(ctx, s.stored(name))
}

// List returns the plain names of blobs written with this codec.
func (s *CodecStore) List(ctx context.Context, prefix string) ([]string, error) {
	names, err := s.inner.List(ctx, prefix)
	if err != nil {
		return nil, err
	}
	ext := s.codec.Ext()
	if ext == "" {
		return names, nil
	}
	out := names[:0]
	for _, n := range names {
		if strings.HasSuffix(n, ext) {
			out = append(out, strings.TrimSuffix(n, ext))
		}
	}
	sort.Strings(out)
	return out, nil
}
