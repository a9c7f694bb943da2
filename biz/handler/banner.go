package handler

import (
	"context"
	"errors"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/atelierhq/agency_cms/biz/service"
	"github.com/atelierhq/agency_cms/pkg/validator"
)

// BannerHandler exposes the banner endpoints.
type BannerHandler struct {
	banners *service.Banners
	upload  *validator.UploadConfig
}

func NewBannerHandler(banners *service.Banners, upload *validator.UploadConfig) *BannerHandler {
	return &BannerHandler{banners: banners, upload: upload}
}

// Add creates a banner from the multipart "image_url" file field.
func (h *BannerHandler) Add(ctx context.Context, c *app.RequestContext) {
	image, err := formImageFile(c, "image_url", h.upload)
	if err != nil {
		writeError(ctx, c, err)
		return
	}
	if image == nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "Image is required"})
		return
	}

	banner, err := h.banners.Create(ctx, image)
	if err != nil {
		writeError(ctx, c, err)
		return
	}
	c.JSON(consts.StatusOK, utils.H{
		"message": "Banner added successfully",
		"banner":  banner,
	})
}

// Update replaces a banner's active flag and image. Without a new
// "image_file" the caller-supplied image_url field is kept verbatim.
func (h *BannerHandler) Update(ctx context.Context, c *app.RequestContext) {
	id, err := paramID(c)
	if err != nil {
		writeError(ctx, c, err)
		return
	}

	isActive, err := strconv.ParseBool(string(c.FormValue("is_active")))
	if err != nil {
		writeError(ctx, c, &service.ValidationError{Msg: "is_active must be a boolean"})
		return
	}

	image, err := formImageFile(c, "image_file", h.upload)
	if err != nil {
		writeError(ctx, c, err)
		return
	}

	banner, err := h.banners.Update(ctx, service.UpdateBannerInput{
		ID:       id,
		IsActive: isActive,
		ImageURL: string(c.FormValue("image_url")),
		Image:    image,
	})
	if err != nil {
		writeError(ctx, c, err)
		return
	}
	// banner is nil when no row matched; the body mirrors that instead of
	// signalling 404, as the API has always done.
	c.JSON(consts.StatusOK, utils.H{
		"message": "Banner updated successfully",
		"banner":  banner,
	})
}

// List returns all banners, newest first.
func (h *BannerHandler) List(ctx context.Context, c *app.RequestContext) {
	banners, err := h.banners.List(ctx)
	if err != nil {
		writeError(ctx, c, err)
		return
	}
	c.JSON(consts.StatusOK, banners)
}

// Get returns one banner by id.
func (h *BannerHandler) Get(ctx context.Context, c *app.RequestContext) {
	id, err := paramID(c)
	if err != nil {
		writeError(ctx, c, err)
		return
	}

	banner, err := h.banners.Get(ctx, id)
	if errors.Is(err, service.ErrNotFound) {
		writeNotFound(c, "Banner not found")
		return
	}
	if err != nil {
		writeError(ctx, c, err)
		return
	}
	c.JSON(consts.StatusOK, banner)
}

// Delete removes a banner unconditionally.
func (h *BannerHandler) Delete(ctx context.Context, c *app.RequestContext) {
	id, err := paramID(c)
	if err != nil {
		writeError(ctx, c, err)
		return
	}

	if err := h.banners.Delete(ctx, id); err != nil {
		writeError(ctx, c, err)
		return
	}
	c.JSON(consts.StatusOK, utils.H{"message": "Banner deleted successfully"})
}
