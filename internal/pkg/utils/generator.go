package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.New().String()
}

func GenerateFileName(prefix, ownerID, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s_%s_%s%s", prefix, ownerID, timestamp, fileExtension)
}

// BuildPhotoURL versions the photo path with the object ETag so clients can
// cache aggressively and still pick up replacements.
func BuildPhotoURL(endpointPrefix, ownerID, etag string) string {
	if etag == "" {
		return fmt.Sprintf("%s/photos/%s", endpointPrefix, ownerID)
	}
	return fmt.Sprintf("%s/photos/%s?v=%s", endpointPrefix, ownerID, etag)
}
