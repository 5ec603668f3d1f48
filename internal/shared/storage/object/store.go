package object

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrTooLarge is returned by ReadAll when an object exceeds the size limit.
var ErrTooLarge = errors.New("object exceeds size limit")

// ObjectStore defines the contract for reading stored documents.
type ObjectStore interface {
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}

// ReadAll opens storageKey and reads at most limit bytes from it.
func ReadAll(ctx context.Context, store ObjectStore, storageKey string, limit int64) ([]byte, error) {
	rc, err := store.Open(ctx, storageKey)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read object %s: %w", storageKey, err)
	}
	if int64(len(data)) > limit {
		return nil, ErrTooLarge
	}
	return data, nil
}
