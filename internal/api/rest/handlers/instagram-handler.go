package handlers

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/allinwom/storefront/internal/apperr"
	"github.com/allinwom/storefront/internal/clients/instagram"
	"github.com/allinwom/storefront/internal/dto"
	"github.com/allinwom/storefront/internal/interfaces"
	"github.com/allinwom/storefront/pkg/utils"
)

const instagramUploadFolder = "storefront/instagram"

type InstagramHandler struct {
	ig       *instagram.Client
	uploader interfaces.Uploader
}

func NewInstagramHandler(ig *instagram.Client, uploader interfaces.Uploader) *InstagramHandler {
	return &InstagramHandler{ig: ig, uploader: uploader}
}

// translate maps graph errors onto the API's error taxonomy.
func translate(err error) error {
	var ae *instagram.APIError
	if !errors.As(err, &ae) {
		return apperr.Internal(err)
	}
	switch {
	case ae.IsInvalidToken():
		return apperr.Unauthorized(apperr.CodeInvalidToken, "instagram access token is invalid or expired")
	case ae.IsPermission():
		return apperr.Forbidden(apperr.CodeForbidden, "instagram account lacks the required permissions")
	default:
		return &apperr.Error{
			Kind:    apperr.KindInternal,
			Code:    apperr.CodeInstagramAPIError,
			Message: ae.Message,
		}
	}
}

func accessToken(c *fiber.Ctx) (string, error) {
	token := c.FormValue("access_token")
	if token == "" {
		token = c.Query("access_token")
	}
	if token == "" {
		return "", apperr.Validation("access_token is required")
	}
	return token, nil
}

// POST /api/v1/instagram/media
// form-data: image=<file>, caption=<text>, access_token=<token>
//
// The graph API only accepts a public HTTPS image URL, so the file goes to
// the CDN first, then through the container/publish flow.
func (h *InstagramHandler) PublishMedia(c *fiber.Ctx) error {
	token, err := accessToken(c)
	if err != nil {
		return err
	}

	account, err := h.ig.ValidateToken(c.Context(), token)
	if err != nil {
		return translate(err)
	}
	if !account.CanPublish() {
		return apperr.Forbidden(apperr.CodeForbidden,
			"content publishing requires a business or creator account")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return apperr.Validation("image file is required")
	}
	if err := checkImageFile(file); err != nil {
		return err
	}

	img, err := normalizedImage(file)
	if err != nil {
		return err
	}

	imageURL, _, err := h.uploader.UploadImage(c.Context(),
		instagramUploadFolder, uuid.NewString(), bytes.NewReader(img))
	if err != nil {
		return apperr.Internal(err)
	}

	containerID, err := h.ig.CreateMediaContainer(c.Context(), token, imageURL, c.FormValue("caption"))
	if err != nil {
		return translate(err)
	}

	mediaID, err := h.ig.PublishMedia(c.Context(), token, containerID)
	if err != nil {
		return translate(err)
	}

	return utils.SuccessMessage(c, fiber.StatusCreated, dto.InstagramPublishResult{
		MediaID:     mediaID,
		ContainerID: containerID,
		ImageURL:    imageURL,
	}, "media published")
}

// GET /api/v1/instagram/media
func (h *InstagramHandler) ListMedia(c *fiber.Ctx) error {
	token, err := accessToken(c)
	if err != nil {
		return err
	}

	account, err := h.ig.ValidateToken(c.Context(), token)
	if err != nil {
		return translate(err)
	}

	media, paging, err := h.ig.ListMedia(c.Context(), token, account.ID)
	if err != nil {
		return translate(err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"media": media, "paging": paging})
}

// GET /api/v1/instagram/comments?media_id=...
func (h *InstagramHandler) ListComments(c *fiber.Ctx) error {
	token, err := accessToken(c)
	if err != nil {
		return err
	}
	mediaID := c.Query("media_id")
	if mediaID == "" {
		return apperr.Validation("media_id is required")
	}

	comments, err := h.ig.ListComments(c.Context(), token, mediaID)
	if err != nil {
		return translate(err)
	}
	return utils.Success(c, fiber.StatusOK, fiber.Map{"comments": comments})
}

// POST /api/v1/instagram/comments/:commentId/reply
func (h *InstagramHandler) ReplyToComment(c *fiber.Ctx) error {
	token, err := accessToken(c)
	if err != nil {
		return err
	}

	var req struct {
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("invalid request body")
	}
	if req.Message == "" {
		return apperr.Validation("message is required")
	}

	replyID, err := h.ig.ReplyToComment(c.Context(), token, c.Params("commentId"), req.Message)
	if err != nil {
		return translate(err)
	}
	return utils.SuccessMessage(c, fiber.StatusCreated, fiber.Map{"id": replyID}, "reply posted")
}
