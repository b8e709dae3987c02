package photos

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"salon-service/internal/app/config"
	"salon-service/internal/app/contracts"
	"salon-service/internal/app/models"
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/dto/responses"
	"salon-service/internal/pkg/exceptions"
	"salon-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var (
	photoUsecaseInstance contracts.PhotoUsecase
	oncePhotoUsecase     sync.Once
)

type photoUsecase struct {
	MinioStorage   contracts.Storage
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewPhotoUsecase(
	minioStorage contracts.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PhotoUsecase {
	oncePhotoUsecase.Do(func() {
		photoUsecaseInstance = &photoUsecase{
			MinioStorage:   minioStorage,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return photoUsecaseInstance
}

// objectName keys photos by owner so a re-upload replaces the previous one
// and the ETag changes.
func objectName(ownerID string) string {
	return fmt.Sprintf("photos/%s", ownerID)
}

// UploadPhoto stores the image for an owner. Only the owner themselves or an
// admin may replace it.
func (uc *photoUsecase) UploadPhoto(ctx context.Context, sessionData *models.Session, ownerID string, file io.Reader, size int64, contentType string) (*responses.UploadPhoto, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("photoUsecase.UploadPhoto called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, ownerID),
		zap.Int64("size", size),
	)

	if sessionData.UserRole != constvars.RoleAdmin && sessionData.UserID != ownerID {
		return nil, exceptions.ErrNotResourceOwner(fmt.Errorf("user %s uploading photo for %s", sessionData.UserID, ownerID))
	}

	maxSize := uc.InternalConfig.Photo.MaxUploadSizeInMB * 1024 * 1024
	if size > maxSize {
		return nil, exceptions.ErrImageTooLarge(fmt.Errorf("upload of %d bytes exceeds limit of %d", size, maxSize))
	}

	// Sniff the real content type from the first bytes rather than trusting
	// the header.
	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, exceptions.ErrImageValidation(err)
	}
	head = head[:n]
	sniffed := http.DetectContentType(head)
	if !allowedImageTypes[sniffed] {
		return nil, exceptions.ErrImageValidation(fmt.Errorf("content type %s is not an allowed image type", sniffed))
	}

	body := io.MultiReader(bytes.NewReader(head), file)
	etag, err := uc.MinioStorage.PutObject(ctx, objectName(ownerID), body, size, sniffed)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("photoUsecase.UploadPhoto stored object",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName(ownerID)),
		zap.String("etag", etag),
	)

	return &responses.UploadPhoto{
		URL:      utils.BuildPhotoURL(uc.InternalConfig.App.EndpointPrefix, ownerID, etag),
		ETag:     etag,
		HasPhoto: true,
	}, nil
}

// FetchPhoto streams the stored image; a missing photo is a plain 404.
func (uc *photoUsecase) FetchPhoto(ctx context.Context, ownerID string) (io.ReadCloser, *contracts.ObjectInfo, error) {
	return uc.MinioStorage.GetObject(ctx, objectName(ownerID))
}

// PhotoInfo stats the owner's photo without reading it.
func (uc *photoUsecase) PhotoInfo(ctx context.Context, ownerID string) (*contracts.ObjectInfo, error) {
	return uc.MinioStorage.StatObject(ctx, objectName(ownerID))
}
