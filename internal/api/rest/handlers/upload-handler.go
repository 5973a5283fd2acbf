package handlers

import (
	"bytes"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/allinwom/storefront/internal/apperr"
	"github.com/allinwom/storefront/internal/dto"
	"github.com/allinwom/storefront/internal/interfaces"
	"github.com/allinwom/storefront/pkg/utils"
)

const (
	maxUploadSize = 5 * 1024 * 1024 // 5MB
	uploadFolder  = "storefront/uploads"

	uploadMaxWidth    = 1600
	uploadJPEGQuality = 85
)

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type UploadHandler struct {
	uploader interfaces.Uploader
}

func NewUploadHandler(uploader interfaces.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

func checkImageFile(file *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExt[ext] {
		return apperr.New(apperr.KindValidation, apperr.CodeUnsupportedFile,
			"only jpg/jpeg/png/webp files are allowed")
	}
	if file.Size > maxUploadSize {
		return apperr.New(apperr.KindValidation, apperr.CodeFileTooLarge,
			"file too large (max 5MB)")
	}
	return nil
}

// normalizedImage reads and re-encodes the upload: EXIF orientation applied,
// downscaled, plain JPEG out.
func normalizedImage(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	defer f.Close()

	raw, err := utils.ReadAllLimit(f, maxUploadSize)
	if err != nil {
		return nil, apperr.New(apperr.KindValidation, apperr.CodeFileTooLarge,
			"file too large (max 5MB)")
	}

	img, err := utils.NormalizeImage(raw, uploadMaxWidth, uploadJPEGQuality)
	if err != nil {
		return nil, apperr.New(apperr.KindValidation, apperr.CodeUnsupportedFile,
			"file is not a valid jpg/png/webp image")
	}
	return img, nil
}

// POST /api/v1/uploads/image
// form-data: file=<image>
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return apperr.Validation("file is required")
	}
	if err := checkImageFile(file); err != nil {
		return err
	}

	img, err := normalizedImage(file)
	if err != nil {
		return err
	}

	url, publicID, err := h.uploader.UploadImage(c.Context(), uploadFolder,
		uuid.NewString(), bytes.NewReader(img))
	if err != nil {
		return apperr.Internal(err)
	}

	return utils.SuccessMessage(c, fiber.StatusCreated,
		dto.UploadResult{URL: url, PublicID: publicID}, "image uploaded")
}
