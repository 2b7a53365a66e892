package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jharrell-gis/geoloader/constants"
	"github.com/jharrell-gis/geoloader/internal/repository"
)

// Service is a tiny façade over the job repository that produces XLSX bytes
// for job-history exports.
type Service struct {
	jobsRepo repository.JobRepository
	logger   *slog.Logger
}

func NewService(jobsRepo repository.JobRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{jobsRepo: jobsRepo, logger: logger}
}

// ExportJobsXLSX returns an XLSX workbook (as bytes) for jobs matching the
// optional status filter and date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all jobs.
func (s *Service) ExportJobsXLSX(ctx context.Context, status *constants.JobStatus, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}

	rows, err := s.jobsRepo.List(ctx, status, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Jobs"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Job ID",
		"Name",
		"Format",
		"Status",
		"Error",
		"Created At",
		"Finished At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, j := range rows {
		name := ""
		if j.Name != nil {
			name = *j.Name
		}
		errMsg := ""
		if j.ErrorMessage != nil {
			errMsg = *j.ErrorMessage
		}
		finished := ""
		if j.FinishedAt != nil {
			finished = j.FinishedAt.UTC().Format(time.RFC3339)
		}

		values := []any{
			j.ID.String(),
			name,
			j.Format,
			j.Status,
			errMsg,
			j.CreatedAt.UTC().Format(time.RFC3339),
			finished,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.jobs.xlsx",
		"rows", row-2,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
