package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/http/response"
	"github.com/Informasjonsforvaltning/fdk-organization-bff/internal/services"
)

type ReportHandler struct {
	reports services.ReportService
}

func NewReportHandler(reports services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// GET /report/datasets
func (h *ReportHandler) Datasets(c *gin.Context) {
	report, err := h.reports.DatasetsReport(c.Request.Context(), c.Query("orgPath"), c.Query("themeprofile"))
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "report_unavailable", err)
		return
	}
	setCacheHeader(c)
	response.RespondOK(c, report)
}

// GET /report/dataservices
func (h *ReportHandler) DataServices(c *gin.Context) {
	report, err := h.reports.DataServiceReport(c.Request.Context(), c.Query("orgPath"))
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "report_unavailable", err)
		return
	}
	setCacheHeader(c)
	response.RespondOK(c, report)
}

// GET /report/concepts
func (h *ReportHandler) Concepts(c *gin.Context) {
	report, err := h.reports.ConceptReport(c.Request.Context(), c.Query("orgPath"))
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "report_unavailable", err)
		return
	}
	setCacheHeader(c)
	response.RespondOK(c, report)
}

// GET /report/informationmodels
func (h *ReportHandler) InformationModels(c *gin.Context) {
	report, err := h.reports.InformationModelReport(c.Request.Context(), c.Query("orgPath"))
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "report_unavailable", err)
		return
	}
	setCacheHeader(c)
	response.RespondOK(c, report)
}
