package dataset

import (
	"context"
	"errors"

	"github.com/hupe1980/mstledger/blobstore"
	"github.com/hupe1980/mstledger/model"
)

// SaveToFile replaces the named log with the encoded dataset.
func (d *Dataset[K, R]) SaveToFile(ctx context.Context, store blobstore.BlobStore, name string) error {
	if err := store.Put(ctx, name, d.Encode()); err != nil {
		return &model.DataError{Op: "write", Path: name, Err: err}
	}
	return nil
}

// ReadFromFile loads the named log. A missing log yields an empty dataset
// unless mustExist is set.
func ReadFromFile[K comparable, R Record[K, R]](ctx context.Context, store blobstore.BlobStore, name string, decode Decoder[R], mustExist bool) (*Dataset[K, R], error) {
	b, err := store.Open(ctx, name)
	if errors.Is(err, blobstore.ErrNotFound) {
		if mustExist {
			return nil, &model.DataError{Op: "read", Path: name, Msg: "log does not exist", Err: err}
		}
		return New[K, R](), nil
	}
	if err != nil {
		return nil, &model.DataError{Op: "read", Path: name, Err: err}
	}
	defer b.Close()

	rc, err := b.ReadRange(ctx, 0, b.Size())
	if err != nil {
		return nil, &model.DataError{Op: "read", Path: name, Err: err}
	}
	defer rc.Close()

	d, err := Read[K](rc, decode)
	if err != nil {
		var de *model.DataError
		if errors.As(err, &de) && de.Path == "" {
			de.Path = name
		}
		return nil, err
	}
	return d, nil
}
