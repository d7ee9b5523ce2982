package services

import (
	"bytes"
	"context"
	"io"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
)

// StorageBucket is the production ImageStore: uploaded images live in a GCS
// bucket reached through the firebase app.
type StorageBucket struct {
	*storage.BucketHandle
}

func NewStorageBucket(ctx context.Context, app *firebase.App, bucketName string) (*StorageBucket, error) {
	client, err := app.Storage(ctx)
	if err != nil {
		return nil, err
	}
	bucketHandle, err := client.Bucket(bucketName)
	if err != nil {
		return nil, err
	}

	return &StorageBucket{
		bucketHandle,
	}, nil
}

func (sb *StorageBucket) Exists(ctx context.Context, blobName string) (bool, error) {
	if len(blobName) == 0 {
		return false, nil
	}
	handle := sb.Object(blobName)
	if _, err := handle.Attrs(ctx); err != nil {
		if err == storage.ErrObjectNotExist {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (sb *StorageBucket) Save(ctx context.Context, filename string, data []byte) (string, error) {
	name := blobName(filename)
	writer := sb.Object(name).NewWriter(ctx)
	if _, err := io.Copy(writer, bytes.NewReader(data)); err != nil {
		writer.Close()
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}
	return name, nil
}

func (sb *StorageBucket) Open(ctx context.Context, name string) (io.ReadCloser, string, error) {
	reader, err := sb.Object(name).NewReader(ctx)
	if err != nil {
		return nil, "", err
	}
	return reader, reader.Attrs.ContentType, nil
}
