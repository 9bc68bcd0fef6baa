package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/teacher-planner-api/internal/dto"
	"github.com/noah-isme/teacher-planner-api/internal/service"
	appErrors "github.com/noah-isme/teacher-planner-api/pkg/errors"
	"github.com/noah-isme/teacher-planner-api/pkg/response"
)

// ReportHandler exposes the dashboard projection and downloads.
type ReportHandler struct {
	reports *service.ReportService
	exports *service.ExportService
}

// NewReportHandler constructs a report handler.
func NewReportHandler(reports *service.ReportService, exports *service.ExportService) *ReportHandler {
	return &ReportHandler{reports: reports, exports: exports}
}

// Report godoc
// @Summary Class, schedule and task summary
// @Tags Reports
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /reports [get]
func (h *ReportHandler) Report(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.reports.Build(c.Request.Context()))
}

// Export godoc
// @Summary Download schedule, roster or report
// @Tags Reports
// @Produce text/csv,application/pdf
// @Param kind path string true "schedule | roster | report"
// @Param format query string false "csv | pdf"
// @Param classId query string false "Class ID (roster only)"
// @Success 200 {file} binary
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /exports/{kind} [get]
func (h *ReportHandler) Export(c *gin.Context) {
	var query dto.ExportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid query"))
		return
	}
	query.Kind = c.Param("kind")

	file, err := h.exports.Generate(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Data)
}
