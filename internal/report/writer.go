package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ytget/yt-catalog/internal/model"
)

// File naming
const (
	DefaultFilePermissions = 0644
	TimestampLayout        = "20060102_150405"
	CSVExtension           = ".csv"
	XLSXExtension          = ".xlsx"
	SheetName              = "Sheet1"
)

// Report prefixes per workflow
const (
	PrefixVideo    = "youtube_video"
	PrefixPlaylist = "youtube_playlist"
)

// Paths are the files produced by one Write call
type Paths struct {
	CSV  string
	XLSX string
}

// ReportWriteError reports a failure writing one report file
type ReportWriteError struct {
	Path string
	Err  error
}

func (e *ReportWriteError) Error() string {
	return fmt.Sprintf("failed to write report %s: %v", e.Path, e.Err)
}

func (e *ReportWriteError) Unwrap() error {
	return e.Err
}

// Writer writes report files into a directory
type Writer struct {
	dir    string
	now    func() time.Time
	logger zerolog.Logger
}

// NewWriter creates a writer for dir ("" means the working directory)
func NewWriter(dir string, logger zerolog.Logger) *Writer {
	return &Writer{
		dir:    dir,
		now:    time.Now,
		logger: logger.With().Str("component", "report").Logger(),
	}
}

// SetClock replaces the timestamp source
func (w *Writer) SetClock(now func() time.Time) {
	w.now = now
}

// Write serializes rows, in order, to <prefix>_<timestamp>.csv and .xlsx.
// Both files share one timestamp.
func (w *Writer) Write(rows []model.VideoRecord, prefix string) (*Paths, error) {
	base := filepath.Join(w.dir, prefix+"_"+w.now().Format(TimestampLayout))
	paths := &Paths{
		CSV:  base + CSVExtension,
		XLSX: base + XLSXExtension,
	}

	if err := writeCSV(paths.CSV, rows); err != nil {
		return nil, &ReportWriteError{Path: paths.CSV, Err: err}
	}
	if err := writeXLSX(paths.XLSX, rows); err != nil {
		return nil, &ReportWriteError{Path: paths.XLSX, Err: err}
	}

	w.logger.Info().
		Str("csv", paths.CSV).
		Str("xlsx", paths.XLSX).
		Int("rows", len(rows)).
		Msg("report saved")
	return paths, nil
}

// writeCSV writes UTF-8 CSV with a byte-order mark, atomically
func writeCSV(path string, rows []model.VideoRecord) error {
	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(DefaultFilePermissions))
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer pending.Cleanup()

	if err := encodeCSV(pending, rows); err != nil {
		return err
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace file: %w", err)
	}
	return nil
}

// encodeCSV writes the BOM, the header and all rows to out
func encodeCSV(out io.Writer, rows []model.VideoRecord) error {
	bom := transform.NewWriter(out, unicode.UTF8BOM.NewEncoder())
	cw := csv.NewWriter(bom)

	withPlaylist := includePlaylist(rows)
	if err := cw.Write(Columns(rows)); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(textCells(r, withPlaylist)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	if err := bom.Close(); err != nil {
		return fmt.Errorf("flush encoder: %w", err)
	}
	return nil
}

// writeXLSX writes a single-sheet workbook, atomically
func writeXLSX(path string, rows []model.VideoRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	header := Columns(rows)
	headerCells := make([]any, len(header))
	for i, h := range header {
		headerCells[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &headerCells); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	withPlaylist := includePlaylist(rows)
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := cells(r, withPlaylist)
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(DefaultFilePermissions))
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer pending.Cleanup()

	if err := f.Write(pending); err != nil {
		return fmt.Errorf("encode workbook: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace file: %w", err)
	}
	return nil
}
