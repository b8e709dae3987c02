package contracts

import (
	"context"
	"io"
)

type ObjectInfo struct {
	ETag        string
	ContentType string
	Size        int64
}

type Storage interface {
	PutObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
	GetObject(ctx context.Context, objectName string) (io.ReadCloser, *ObjectInfo, error)
	StatObject(ctx context.Context, objectName string) (*ObjectInfo, error)
}
