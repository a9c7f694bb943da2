package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/atelierhq/agency_cms/biz/service"
	"github.com/atelierhq/agency_cms/pkg/validator"
)

// ServiceHandler exposes the offered-services endpoints.
type ServiceHandler struct {
	services *service.Services
	upload   *validator.UploadConfig
}

func NewServiceHandler(services *service.Services, upload *validator.UploadConfig) *ServiceHandler {
	return &ServiceHandler{services: services, upload: upload}
}

// Add creates a service from the multipart "image_file" field plus
// title/description/points form fields.
func (h *ServiceHandler) Add(ctx context.Context, c *app.RequestContext) {
	image, err := formImageFile(c, "image_file", h.upload)
	if err != nil {
		writeError(ctx, c, err)
		return
	}
	if image == nil {
		c.JSON(consts.StatusBadRequest, utils.H{"error": "Service image is required"})
		return
	}

	created, err := h.services.Create(ctx, service.CreateServiceInput{
		Title:       string(c.FormValue("title")),
		Description: string(c.FormValue("description")),
		Points:      formValues(c, "points"),
		Image:       image,
	})
	if err != nil {
		writeError(ctx, c, err)
		return
	}
	c.JSON(consts.StatusCreated, utils.H{
		"message": "Service added successfully",
		"service": created,
	})
}

// List returns all services, newest first.
func (h *ServiceHandler) List(ctx context.Context, c *app.RequestContext) {
	services, err := h.services.List(ctx)
	if err != nil {
		writeError(ctx, c, err)
		return
	}
	c.JSON(consts.StatusOK, services)
}

// Delete removes a service unconditionally.
func (h *ServiceHandler) Delete(ctx context.Context, c *app.RequestContext) {
	id, err := paramID(c)
	if err != nil {
		writeError(ctx, c, err)
		return
	}

	if err := h.services.Delete(ctx, id); err != nil {
		writeError(ctx, c, err)
		return
	}
	c.JSON(consts.StatusOK, utils.H{"message": "Service deleted successfully"})
}

// formValues returns every value posted under the field, preserving the
// multi-valued shape the points normalizer dispatches on.
func formValues(c *app.RequestContext, field string) []string {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}
	return form.Value[field]
}
