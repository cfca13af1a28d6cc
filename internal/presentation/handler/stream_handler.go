package handler

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"path"

	"github.com/labstack/echo/v4"

	"audiblebooks/internal/application/usecase/abstraction"
	"audiblebooks/internal/domain/dto"
	"audiblebooks/internal/domain/errs"
	"audiblebooks/internal/presentation"
	"audiblebooks/pkg/utils"
)

type StreamHandler struct {
	streamer abstraction.Streamer
}

func NewStreamHandler(streamer abstraction.Streamer) *StreamHandler {
	return &StreamHandler{streamer: streamer}
}

// HandleAudio handles GET /api/audiobooks/audio/:filename requests. The whole
// object is buffered and served base64-encoded in a JSON envelope.
func (h *StreamHandler) HandleAudio(c echo.Context) error {
	name := c.Param(presentation.FilenameParam)
	if name == "" {
		return errorJSON(c, errs.Validationf("missing filename"))
	}

	header, data, err := h.streamer.ReadAll(c.Request().Context(), name)
	if err != nil {
		return errorJSON(c, err)
	}

	contentType := header.ContentType
	if contentType == "" {
		contentType = "audio/mpeg"
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"payload": dto.AudioPayload{
			AudioBase64: base64.StdEncoding.EncodeToString(data),
			ContentType: contentType,
		},
	})
}

// HandleImage handles GET /api/audiobooks/image/:filename requests, streaming
// the object chunks straight to the response.
func (h *StreamHandler) HandleImage(c echo.Context) error {
	name := c.Param(presentation.FilenameParam)
	if name == "" {
		return errorJSON(c, errs.Validationf("missing filename"))
	}

	header, stream, err := h.streamer.Open(c.Request().Context(), name)
	if err != nil {
		return errorJSON(c, err)
	}
	defer stream.Close()

	contentType := header.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	filename := header.Name
	if path.Ext(filename) == "" {
		filename += utils.GetExtensionFromMimeType(contentType)
	}

	c.Response().Header().Set(echo.HeaderContentLength, fmt.Sprintf("%d", header.Length))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", filename))

	return c.Stream(http.StatusOK, contentType, stream)
}
