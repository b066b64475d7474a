package services

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/infoaidtech/backend/internal/storage"
	"github.com/infoaidtech/backend/internal/utils"
)

// CVFileService stores applicant CVs and hands back the public URL used as
// cvUrl in a subsequent apply call.
type CVFileService interface {
	Upload(ctx context.Context, fileName, mimeType string, r io.Reader) (url string, err error)
}

type cvFileService struct {
	uploader storage.Uploader
}

func NewCVFileService(uploader storage.Uploader) CVFileService {
	return &cvFileService{uploader: uploader}
}

func (s *cvFileService) Upload(ctx context.Context, fileName, mimeType string, r io.Reader) (string, error) {
	const op = "CVFileService.Upload"

	if s.uploader == nil {
		return "", utils.E(utils.CodeUnavailable, op, "cv storage is not configured", nil)
	}
	if fileName == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "file name is required", nil)
	}

	objectName := "cv/" + uuid.NewString() + ".pdf"
	url, err := s.uploader.Upload(ctx, objectName, mimeType, r)
	if err != nil {
		return "", utils.E(utils.CodeUnavailable, op, "failed to upload file", err)
	}
	return url, nil
}
