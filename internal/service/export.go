package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/domain"
	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/storage"
	"github.com/rs/zerolog/log"
)

// ErrArchiveUnavailable signals that no object archive is configured, so
// there is nothing to list.
var ErrArchiveUnavailable = errors.New("export archive not configured")

// ExportService renders report bundles as CSV and archives them. The local
// export directory always receives a copy; the object archive is optional.
type ExportService struct {
	reports   *ReportService
	archive   storage.ObjectStorage
	exportDir string
}

func NewExportService(reports *ReportService, archive storage.ObjectStorage, exportDir string) *ExportService {
	return &ExportService{
		reports:   reports,
		archive:   archive,
		exportDir: exportDir,
	}
}

// Export builds the report, writes the CSV locally, and uploads it when an
// archive is configured. It returns the generated file name.
func (s *ExportService) Export(ctx context.Context, reportType string, period domain.Period) (string, error) {
	bundle, err := s.reports.Build(ctx, reportType, period)
	if err != nil {
		return "", err
	}
	if bundle.Failed {
		return "", fmt.Errorf("cannot export failed %s report: %s", reportType, bundle.Error)
	}

	data, err := renderCSV(bundle)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s-report-%s.csv", reportType, time.Now().Format("20060102-150405"))

	if s.exportDir != "" {
		path := filepath.Join(s.exportDir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return "", fmt.Errorf("failed to write export file: %w", err)
		}
	}

	if s.archive != nil {
		key := fmt.Sprintf("exports/%s/%s", reportType, name)
		if err := s.archive.UploadObject(ctx, key, data, "text/csv"); err != nil {
			return "", err
		}
		log.Info().Str("key", key).Int("bytes", len(data)).Msg("export: archived report")
	}

	return name, nil
}

// ListExports lists the archived CSVs for one report type.
func (s *ExportService) ListExports(ctx context.Context, reportType string) ([]storage.ObjectInfo, error) {
	if s.archive == nil {
		return nil, ErrArchiveUnavailable
	}
	return s.archive.ListObjects(ctx, fmt.Sprintf("exports/%s/", reportType))
}

// renderCSV flattens a bundle into a header row plus one line per grid row,
// in column order.
func renderCSV(bundle *domain.ReportBundle) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, len(bundle.Columns))
	for i, col := range bundle.Columns {
		header[i] = col.Label
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	line := make([]string, len(bundle.Columns))
	for _, row := range bundle.DetailedRows {
		for i, col := range bundle.Columns {
			line[i] = row[col.Key]
		}
		if err := w.Write(line); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}
