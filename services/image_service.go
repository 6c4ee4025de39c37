package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/pratapadwait/pratapliving/dto"
)

// ImageUploader is all the core knows about the image host: hand over
// bytes scoped to a folder, get a durable public URL back. Transform
// parameters appended to that URL later are the host's concern.
type ImageUploader interface {
	Upload(ctx context.Context, r io.Reader, folder string) (dto.UploadResult, error)
}

// CloudinaryUploader stores files with the configured Cloudinary account.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cld *cloudinary.Cloudinary) *CloudinaryUploader {
	return &CloudinaryUploader{cld: cld}
}

func (u *CloudinaryUploader) Upload(ctx context.Context, r io.Reader, folder string) (dto.UploadResult, error) {
	resp, err := u.cld.Upload.Upload(ctx, r, uploader.UploadParams{Folder: folder})
	if err != nil {
		return dto.UploadResult{}, err
	}
	// The SDK reports some rejections in the body instead of err.
	if resp.SecureURL == "" {
		return dto.UploadResult{}, fmt.Errorf("upload rejected: %s", resp.Error.Message)
	}
	return dto.UploadResult{
		URL:      resp.SecureURL,
		FileID:   resp.PublicID,
		FilePath: "/" + resp.PublicID,
	}, nil
}

// IsImageContentType reports whether the declared MIME type is an image.
func IsImageContentType(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(contentType), "image/")
}
