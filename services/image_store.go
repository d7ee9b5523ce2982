package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// ImageStore persists post image attachments. Save returns the blob name
// stored on the post row; Open streams the blob back with its content type.
type ImageStore interface {
	Save(ctx context.Context, filename string, data []byte) (blobName string, err error)
	Open(ctx context.Context, blobName string) (body io.ReadCloser, contentType string, err error)
}

// blobName keeps the original extension so content types survive the
// round-trip, with a uuid to avoid collisions between same-named uploads.
func blobName(filename string) string {
	return uuid.New().String() + filepath.Ext(filename)
}

// MemoryImageStore keeps blobs in process memory. Tests and local dev.
type MemoryImageStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func NewMemoryImageStore() *MemoryImageStore {
	return &MemoryImageStore{blobs: make(map[string][]byte)}
}

func (mis *MemoryImageStore) Save(ctx context.Context, filename string, data []byte) (string, error) {
	mis.mu.Lock()
	defer mis.mu.Unlock()
	name := blobName(filename)
	copied := make([]byte, len(data))
	copy(copied, data)
	mis.blobs[name] = copied
	return name, nil
}

func (mis *MemoryImageStore) Open(ctx context.Context, name string) (io.ReadCloser, string, error) {
	mis.mu.Lock()
	defer mis.mu.Unlock()
	data, ok := mis.blobs[name]
	if !ok {
		return nil, "", fmt.Errorf("blob %q does not exist", name)
	}
	return io.NopCloser(bytes.NewReader(data)), http.DetectContentType(data), nil
}
