package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alexanderciuffreda/mannheim-planner/internal/export"
	"github.com/alexanderciuffreda/mannheim-planner/internal/model"
	"github.com/alexanderciuffreda/mannheim-planner/internal/response"
	"github.com/alexanderciuffreda/mannheim-planner/internal/service"
	"github.com/alexanderciuffreda/mannheim-planner/internal/validator"
)

type ExportHandler struct {
	exportService *service.ExportService
	log           zerolog.Logger
}

func NewExportHandler(exportService *service.ExportService, log zerolog.Logger) *ExportHandler {
	return &ExportHandler{
		exportService: exportService,
		log:           log.With().Str("component", "export_handler").Logger(),
	}
}

// ExportPlan godoc
// POST /api/export/:format
//
// The body carries the client's plan selections. An unreadable body is not
// an error: clients may legitimately export an empty plan, so only struct
// validation failures (e.g. an absurd selection count) are rejected.
func (h *ExportHandler) ExportPlan(c *gin.Context) {
	format := c.Param("format")

	var req model.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if validator.IsValidationError(err) {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, validator.TranslateErrors(err))
			return
		}
		h.log.Debug().Err(err).Msg("Export payload unreadable, exporting empty plan")
		req = model.ExportRequest{}
	}

	doc, err := h.exportService.Export(c.Request.Context(), format, req.Selections)
	if err != nil {
		if errors.Is(err, export.ErrUnsupportedFormat) {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidExportFormat)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+doc.Filename)
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}
