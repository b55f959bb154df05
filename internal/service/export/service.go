package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/attendly/attendance-backend-go/internal/pkg/storage"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

var ErrExportNotFound = errors.New("export file not found")

const sheetName = "Summary"

// Display value for first/last fields when the group has no events of that
// action.
const unavailable = "unavailable"

// ExportService converts a summary report into a downloadable spreadsheet
// document: one sheet, a header row, one row per summary entry.
type ExportService interface {
	// SummaryWorkbook renders the report as xlsx, keeps a copy under the
	// export storage and returns the filename plus the document bytes.
	SummaryWorkbook(ctx context.Context, rpt report.SummaryReport) (string, []byte, error)

	// SummaryFile reads back a previously stored export. Returns
	// ErrExportNotFound when no export with that filename exists.
	SummaryFile(ctx context.Context, filename string) ([]byte, error)

	// RemoveSummaryFile deletes a previously stored export. Returns
	// ErrExportNotFound when no export with that filename exists.
	RemoveSummaryFile(ctx context.Context, filename string) error
}

type ExportServiceImpl struct {
	fileStorage storage.FileStorage
}

func NewExportService(fileStorage storage.FileStorage) ExportService {
	return &ExportServiceImpl{
		fileStorage: fileStorage,
	}
}

// SummaryWorkbook implements ExportService.
func (s *ExportServiceImpl) SummaryWorkbook(ctx context.Context, rpt report.SummaryReport) (string, []byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return "", nil, fmt.Errorf("failed to name summary sheet: %w", err)
	}

	headerRow := []interface{}{"EmpID", "Name", "Period", "First Check In", "Last Check Out", "Hours Worked"}
	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return "", nil, fmt.Errorf("failed to write header row: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		_ = f.SetCellStyle(sheetName, "A1", "F1", style)
	}

	for i, row := range rpt.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return "", nil, fmt.Errorf("failed to compute cell name: %w", err)
		}

		firstCheckIn := unavailable
		if row.FirstCheckIn != nil {
			firstCheckIn = *row.FirstCheckIn
		}
		lastCheckOut := unavailable
		if row.LastCheckOut != nil {
			lastCheckOut = *row.LastCheckOut
		}

		values := []interface{}{
			row.EmployeeID,
			row.EmployeeName,
			row.Period,
			firstCheckIn,
			lastCheckOut,
			row.TotalWorked,
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return "", nil, fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", nil, fmt.Errorf("failed to render workbook: %w", err)
	}

	filename := fmt.Sprintf("attendance-%s-%s-%s.xlsx", rpt.PeriodKind, rpt.Period, uuid.New().String())
	if _, err := s.fileStorage.Upload(ctx, bytes.NewReader(buf.Bytes()), filename); err != nil {
		return "", nil, fmt.Errorf("failed to store export copy: %w", err)
	}

	return filename, buf.Bytes(), nil
}

// SummaryFile implements ExportService.
func (s *ExportServiceImpl) SummaryFile(ctx context.Context, filename string) ([]byte, error) {
	ok, err := s.fileStorage.Exists(ctx, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to check export: %w", err)
	}
	if !ok {
		return nil, ErrExportNotFound
	}

	rc, err := s.fileStorage.Download(ctx, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open export: %w", err)
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read export: %w", err)
	}

	return content, nil
}

// RemoveSummaryFile implements ExportService.
func (s *ExportServiceImpl) RemoveSummaryFile(ctx context.Context, filename string) error {
	ok, err := s.fileStorage.Exists(ctx, filename)
	if err != nil {
		return fmt.Errorf("failed to check export: %w", err)
	}
	if !ok {
		return ErrExportNotFound
	}

	if err := s.fileStorage.Delete(ctx, filename); err != nil {
		return fmt.Errorf("failed to delete export: %w", err)
	}

	return nil
}
