package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
	"github.com/attendly/attendance-backend-go/internal/service/export"
	"github.com/go-chi/chi/v5"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportHandler interface {
	Daily(w http.ResponseWriter, r *http.Request)
	Monthly(w http.ResponseWriter, r *http.Request)
	ExportDaily(w http.ResponseWriter, r *http.Request)
	ExportMonthly(w http.ResponseWriter, r *http.Request)
	DownloadExport(w http.ResponseWriter, r *http.Request)
	DeleteExport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
	exportService export.ExportService
}

func NewReportHandler(reportService report.Service, exportService export.ExportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		exportService: exportService,
	}
}

func dailyRequestFromQuery(r *http.Request) report.DailySummaryRequest {
	return report.DailySummaryRequest{
		Date: r.URL.Query().Get("date"),
	}
}

func monthlyRequestFromQuery(r *http.Request) report.MonthlySummaryRequest {
	var req report.MonthlySummaryRequest
	if m, err := strconv.Atoi(r.URL.Query().Get("month")); err == nil {
		req.Month = m
	}
	if y, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil {
		req.Year = y
	}
	return req
}

// Daily implements ReportHandler.
func (h *reportHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.DailySummary(r.Context(), dailyRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Monthly implements ReportHandler.
func (h *reportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.MonthlySummary(r.Context(), monthlyRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportDaily implements ReportHandler.
func (h *reportHandlerImpl) ExportDaily(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.DailySummary(r.Context(), dailyRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.writeWorkbook(w, r, result)
}

// ExportMonthly implements ReportHandler.
func (h *reportHandlerImpl) ExportMonthly(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.MonthlySummary(r.Context(), monthlyRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	h.writeWorkbook(w, r, result)
}

// DownloadExport implements ReportHandler. It re-serves an export previously
// persisted by one of the export endpoints.
func (h *reportHandlerImpl) DownloadExport(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	content, err := h.exportService.SummaryFile(r.Context(), filename)
	if err != nil {
		if errors.Is(err, export.ErrExportNotFound) {
			response.NotFound(w, "Export not found")
			return
		}
		response.HandleError(w, err)
		return
	}

	writeAttachment(w, filename, content)
}

// DeleteExport implements ReportHandler.
func (h *reportHandlerImpl) DeleteExport(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	if err := h.exportService.RemoveSummaryFile(r.Context(), filename); err != nil {
		if errors.Is(err, export.ErrExportNotFound) {
			response.NotFound(w, "Export not found")
			return
		}
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Export deleted", nil)
}

func (h *reportHandlerImpl) writeWorkbook(w http.ResponseWriter, r *http.Request, result report.SummaryReport) {
	filename, content, err := h.exportService.SummaryWorkbook(r.Context(), result)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writeAttachment(w, filename, content)
}

func writeAttachment(w http.ResponseWriter, filename string, content []byte) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}
