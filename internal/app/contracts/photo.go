package contracts

import (
	"context"
	"io"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/dto/responses"
)

type PhotoUsecase interface {
	UploadPhoto(ctx context.Context, sessionData *models.Session, ownerID string, file io.Reader, size int64, contentType string) (*responses.UploadPhoto, error)
	FetchPhoto(ctx context.Context, ownerID string) (io.ReadCloser, *ObjectInfo, error)
	PhotoInfo(ctx context.Context, ownerID string) (*ObjectInfo, error)
}
