package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/domain"
	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingArchive struct {
	key         string
	contentType string
	data        []byte
	err         error
}

func (a *recordingArchive) UploadObject(_ context.Context, key string, data []byte, contentType string) error {
	if a.err != nil {
		return a.err
	}
	a.key = key
	a.data = data
	a.contentType = contentType
	return nil
}

func (a *recordingArchive) ListObjects(_ context.Context, prefix string) ([]storage.ObjectInfo, error) {
	if a.err != nil {
		return nil, a.err
	}
	if a.key == "" || !strings.HasPrefix(a.key, prefix) {
		return nil, nil
	}
	return []storage.ObjectInfo{{Key: a.key, Size: int64(len(a.data))}}, nil
}

func TestExportService_Export_WritesCSVAndArchives(t *testing.T) {
	reports := newTestReportService(augustOrders())
	archive := &recordingArchive{}
	dir := t.TempDir()

	svc := NewExportService(reports, archive, dir)
	start, end := augustRange()

	name, err := svc.Export(context.Background(), domain.ReportSales, rangePeriod(start, end))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "sales-report-"))
	assert.True(t, strings.HasSuffix(name, ".csv"))

	raw, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3) // header + one row per order line
	assert.Contains(t, lines[0], "Customer")
	assert.Contains(t, strings.Join(lines[1:], "\n"), "Mara")

	assert.Equal(t, "exports/sales/"+name, archive.key)
	assert.Equal(t, "text/csv", archive.contentType)
	assert.Equal(t, raw, archive.data)
}

func TestExportService_Export_SkipsArchiveWhenUnconfigured(t *testing.T) {
	reports := newTestReportService(augustOrders())
	dir := t.TempDir()

	svc := NewExportService(reports, nil, dir)
	start, end := augustRange()

	name, err := svc.Export(context.Background(), domain.ReportSales, rangePeriod(start, end))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, name))
	require.NoError(t, err)
}

func TestExportService_ListExports_ReturnsArchivedObjects(t *testing.T) {
	reports := newTestReportService(augustOrders())
	archive := &recordingArchive{}

	svc := NewExportService(reports, archive, t.TempDir())
	start, end := augustRange()

	name, err := svc.Export(context.Background(), domain.ReportSales, rangePeriod(start, end))
	require.NoError(t, err)

	objects, err := svc.ListExports(context.Background(), domain.ReportSales)
	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, "exports/sales/"+name, objects[0].Key)
	assert.Equal(t, int64(len(archive.data)), objects[0].Size)

	// Other report types share the archive but not the prefix.
	others, err := svc.ListExports(context.Background(), domain.ReportInventory)
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestExportService_ListExports_WithoutArchive(t *testing.T) {
	reports := newTestReportService(augustOrders())

	svc := NewExportService(reports, nil, t.TempDir())

	_, err := svc.ListExports(context.Background(), domain.ReportSales)
	require.ErrorIs(t, err, ErrArchiveUnavailable)
}

func TestExportService_Export_RefusesFailedBundle(t *testing.T) {
	orders := &stubOrderStore{err: errors.New("connection refused")}
	reports := newTestReportService(orders)

	svc := NewExportService(reports, nil, t.TempDir())
	start, end := augustRange()

	_, err := svc.Export(context.Background(), domain.ReportSales, rangePeriod(start, end))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot export failed")
}
