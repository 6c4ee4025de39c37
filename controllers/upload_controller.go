package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pratapadwait/pratapliving/builders"
	"github.com/pratapadwait/pratapliving/constants"
	"github.com/pratapadwait/pratapliving/dto"
	"github.com/pratapadwait/pratapliving/response"
	"github.com/pratapadwait/pratapliving/services"
	"github.com/pratapadwait/pratapliving/services/logger"
)

type UploadController struct {
	uploader services.ImageUploader
	logger   logger.Logger
}

func NewUploadController(uploader services.ImageUploader, l logger.Logger) *UploadController {
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &UploadController{uploader: uploader, logger: l}
}

// Upload handles POST /api/images/upload: one multipart `file` plus an
// optional `folder`, answered with {url, fileId, filePath}. Non-image
// MIME types and files over the size cap get a 400.
func (ctl *UploadController) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No file provided")
		return
	}
	folder := c.DefaultPostForm("folder", constants.DefaultImgFolder)

	if !services.IsImageContentType(fileHeader.Header.Get("Content-Type")) {
		response.BadRequest(c, "Only image uploads are allowed")
		return
	}
	if fileHeader.Size > constants.MaxUploadBytes {
		response.BadRequest(c, "File exceeds the 10 MB limit")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, "Could not read file")
		return
	}
	defer src.Close()

	result, err := ctl.uploader.Upload(c.Request.Context(), src, folder)
	if err != nil {
		ctl.logger.Error("uploading %s: %v", fileHeader.Filename, err)
		response.ServerError(c, "Upload failed")
		return
	}
	response.OK(c, result)
}

// MultiUpload handles POST /api/images/multi-upload: a `files` batch
// uploaded sequentially through a capped gallery. Partial failure is
// reported as counts, not as an error.
func (ctl *UploadController) MultiUpload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "No files provided")
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		response.BadRequest(c, "No files provided")
		return
	}
	folder := c.DefaultPostForm("folder", constants.DefaultImgFolder)

	maxImages := constants.MaxGalleryImages
	if raw := c.PostForm("maxImages"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= constants.MaxGalleryImages {
			maxImages = n
		}
	}

	gallery := builders.NewGalleryBuilder(maxImages)
	report := gallery.AddFiles(c.Request.Context(), ctl.uploader, files, folder)
	if report.Failed > 0 {
		ctl.logger.Info("batch upload: %s (%d failed)", report.Summary(), report.Failed)
	}

	response.OK(c, dto.BatchUploadResponse{
		URLs:     report.URLs,
		Accepted: report.Accepted,
		Failed:   report.Failed,
		Rejected: report.Rejected,
		Message:  report.Summary(),
	})
}
