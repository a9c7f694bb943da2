package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/atelierhq/agency_cms/biz/service"
	"github.com/atelierhq/agency_cms/pkg/validator"
)

// BlogHandler exposes the blog endpoints.
type BlogHandler struct {
	blogs  *service.Blogs
	upload *validator.UploadConfig
}

func NewBlogHandler(blogs *service.Blogs, upload *validator.UploadConfig) *BlogHandler {
	return &BlogHandler{blogs: blogs, upload: upload}
}

// ListActive returns active posts only, newest first. Public listing.
func (h *BlogHandler) ListActive(ctx context.Context, c *app.RequestContext) {
	blogs, err := h.blogs.ListActive(ctx)
	if err != nil {
		writeError(ctx, c, err)
		return
	}
	c.JSON(consts.StatusOK, blogs)
}

// ListAll returns every post, newest first. Administrative listing.
func (h *BlogHandler) ListAll(ctx context.Context, c *app.RequestContext) {
	blogs, err := h.blogs.ListAll(ctx)
	if err != nil {
		writeError(ctx, c, err)
		return
	}
	c.JSON(consts.StatusOK, blogs)
}

// Create creates a blog post from the multipart "image" field plus
// title/description/slug form fields.
func (h *BlogHandler) Create(ctx context.Context, c *app.RequestContext) {
	image, err := formImageFile(c, "image", h.upload)
	if err != nil {
		writeError(ctx, c, err)
		return
	}
	if image == nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "Blog image is required"})
		return
	}

	created, err := h.blogs.Create(ctx, service.CreateBlogInput{
		Title:       string(c.FormValue("title")),
		Description: string(c.FormValue("description")),
		Slug:        string(c.FormValue("slug")),
		Image:       image,
	})
	if err != nil {
		writeError(ctx, c, err)
		return
	}
	c.JSON(consts.StatusOK, created)
}

// Toggle flips a post's active flag and returns the updated post. A missing
// id yields a null body, as the API has always done.
func (h *BlogHandler) Toggle(ctx context.Context, c *app.RequestContext) {
	id, err := paramID(c)
	if err != nil {
		writeError(ctx, c, err)
		return
	}

	blog, err := h.blogs.Toggle(ctx, id)
	if err != nil {
		writeError(ctx, c, err)
		return
	}
	c.JSON(consts.StatusOK, blog)
}

// Delete removes a blog post unconditionally.
func (h *BlogHandler) Delete(ctx context.Context, c *app.RequestContext) {
	id, err := paramID(c)
	if err != nil {
		writeError(ctx, c, err)
		return
	}

	if err := h.blogs.Delete(ctx, id); err != nil {
		writeError(ctx, c, err)
		return
	}
	c.JSON(consts.StatusOK, utils.H{"message": "Blog deleted"})
}
