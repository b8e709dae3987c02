package controllers

import (
	"context"
	"io"
	"net/http"
	"salon-service/internal/app/config"
	"salon-service/internal/app/contracts"
	"salon-service/internal/pkg/constvars"
	"salon-service/internal/pkg/exceptions"
	"salon-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PhotoController struct {
	Log            *zap.Logger
	PhotoUsecase   contracts.PhotoUsecase
	InternalConfig *config.InternalConfig
}

func NewPhotoController(logger *zap.Logger, photoUsecase contracts.PhotoUsecase, internalConfig *config.InternalConfig) *PhotoController {
	return &PhotoController{
		Log:            logger,
		PhotoUsecase:   photoUsecase,
		InternalConfig: internalConfig,
	}
}

// FetchPhoto streams the stored object. It is public so that avatar and
// service images render without an Authorization header on <img> tags.
func (ctrl *PhotoController) FetchPhoto(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, constvars.URLParamOwnerID)
	if ownerID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamOwnerID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	object, info, err := ctrl.PhotoUsecase.FetchPhoto(ctx, ownerID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	defer object.Close()

	w.Header().Set(constvars.HeaderContentType, info.ContentType)
	w.Header().Set(constvars.HeaderETag, info.ETag)
	w.WriteHeader(constvars.StatusOK)

	if _, err := io.Copy(w, object); err != nil {
		ctrl.Log.Error("photo stream interrupted",
			zap.String(constvars.LoggingObjectNameKey, ownerID),
			zap.Error(err),
		)
	}
}

func (ctrl *PhotoController) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	sessionData, err := sessionFromRequest(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ownerID := chi.URLParam(r, constvars.URLParamOwnerID)
	if ownerID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamValidation(nil, constvars.URLParamOwnerID))
		return
	}

	maxBytes := ctrl.InternalConfig.Photo.MaxUploadSizeInMB << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result, err := ctrl.PhotoUsecase.UploadPhoto(ctx, sessionData, ownerID, file, header.Size, header.Header.Get(constvars.HeaderContentType))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UploadPhotoSuccessMessage, result)
}
