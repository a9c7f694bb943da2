package handler

import (
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"github.com/atelierhq/agency_cms/biz/service"
	"github.com/atelierhq/agency_cms/pkg/validator"
)

// Ping is a liveness probe.
func Ping(ctx context.Context, c *app.RequestContext) {
	c.JSON(consts.StatusOK, utils.H{"message": "pong"})
}

// formImageFile buffers the multipart file under the given field fully in
// memory. A missing field is not an error here: create flows require the
// image, update flows tolerate its absence, so the caller decides.
func formImageFile(c *app.RequestContext, field string, upload *validator.UploadConfig) (*service.ImageFile, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}

	if err := upload.ValidateFileSize(fileHeader.Size); err != nil {
		return nil, &service.ValidationError{Msg: err.Error()}
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &service.ImageFile{
		Name:        fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func paramID(c *app.RequestContext) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, &service.ValidationError{Msg: "invalid id"}
	}
	return uint(id), nil
}

// writeError maps the service error taxonomy onto HTTP statuses. Validation
// problems echo their message; anything else is logged server-side and
// answered with a fixed body so internals never leak to clients.
func writeError(ctx context.Context, c *app.RequestContext, err error) {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		c.JSON(consts.StatusBadRequest, utils.H{"error": ve.Msg})
		return
	}
	hlog.CtxErrorf(ctx, "request failed: %v", err)
	c.JSON(consts.StatusInternalServerError, utils.H{"error": "Server error"})
}

func writeNotFound(c *app.RequestContext, msg string) {
	c.JSON(consts.StatusNotFound, utils.H{"error": msg})
}
