package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"myhealth/rehab-api/internal/domain"
	"myhealth/rehab-api/internal/storage"
)

// --- Error Definitions ---
var (
	ErrUploadsDisabled    = errors.New("object storage is not configured")
	ErrInvalidContentType = errors.New("invalid or missing image content type")
	ErrUploadURLError     = errors.New("failed to generate upload URL")
)

// UploadService hands out presigned URLs for direct image uploads.
type UploadService interface {
	RequestUploadURL(ctx context.Context, userID int, kind domain.UploadKind, contentType string) (*domain.UploadTicket, error)
}

type uploadService struct {
	fileStorage storage.FileStorage // nil when S3 is not configured
}

// NewUploadService creates a new instance of uploadService. fileStorage may be nil.
func NewUploadService(fileStorage storage.FileStorage) UploadService {
	return &uploadService{fileStorage: fileStorage}
}

// RequestUploadURL generates a pre-signed URL for uploading one image.
func (s *uploadService) RequestUploadURL(ctx context.Context, userID int, kind domain.UploadKind, contentType string) (*domain.UploadTicket, error) {
	if s.fileStorage == nil {
		return nil, ErrUploadsDisabled
	}
	ext, ok := imageExtension(contentType)
	if !ok {
		return nil, ErrInvalidContentType
	}

	objectKey := path.Join(string(kind), strconv.Itoa(userID), fmt.Sprintf("%s.%s", uuid.NewString(), ext))

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, ErrUploadURLError
	}

	return &domain.UploadTicket{
		UploadURL: uploadURL,
		ObjectKey: objectKey,
		PublicURL: s.fileStorage.ObjectURL(objectKey),
	}, nil
}

// imageExtension maps "image/png" to "png" and "image/svg+xml" to "svg".
func imageExtension(contentType string) (string, bool) {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	sub, ok := strings.CutPrefix(contentType, "image/")
	if !ok || sub == "" {
		return "", false
	}
	if i := strings.IndexAny(sub, "+;"); i >= 0 {
		sub = sub[:i]
	}
	if sub == "jpeg" {
		sub = "jpg"
	}
	return sub, sub != ""
}
