package storage

import (
	"context"
	"io"
	"salon-service/internal/app/contracts"
	"salon-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioStorage(minioClient *minio.Client, bucketName string) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioStorage) PutObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	info, err := m.MinioClient.PutObject(ctx, m.BucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioPutObject(err, m.BucketName)
	}

	return info.ETag, nil
}

func (m *minioStorage) GetObject(ctx context.Context, objectName string) (io.ReadCloser, *contracts.ObjectInfo, error) {
	object, err := m.MinioClient.GetObject(ctx, m.BucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, exceptions.ErrMinioGetObject(err, m.BucketName)
	}

	// GetObject is lazy; Stat forces the round trip so missing keys surface here.
	stat, err := object.Stat()
	if err != nil {
		object.Close()
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" {
			return nil, nil, exceptions.ErrPhotoNotFound(err)
		}
		return nil, nil, exceptions.ErrMinioGetObject(err, m.BucketName)
	}

	return object, &contracts.ObjectInfo{
		ETag:        stat.ETag,
		ContentType: stat.ContentType,
		Size:        stat.Size,
	}, nil
}

func (m *minioStorage) StatObject(ctx context.Context, objectName string) (*contracts.ObjectInfo, error) {
	stat, err := m.MinioClient.StatObject(ctx, m.BucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" {
			return nil, exceptions.ErrPhotoNotFound(err)
		}
		return nil, exceptions.ErrMinioGetObject(err, m.BucketName)
	}

	return &contracts.ObjectInfo{
		ETag:        stat.ETag,
		ContentType: stat.ContentType,
		Size:        stat.Size,
	}, nil
}
