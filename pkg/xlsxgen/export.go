package xlsxgen

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/xlsxgen-go/pkg/xlsxgen/models"
	"github.com/ukaji3/xlsxgen-go/pkg/xlsxgen/protect"
	"github.com/ukaji3/xlsxgen-go/pkg/xlsxgen/writer"
	"github.com/xuri/excelize/v2"
)

// Export writes wb as an .xlsx package to w. Sheets are emitted in
// display order; protection descriptors already attached to the workbook
// and its sheets are embedded as is.
func Export(wb *models.Workbook, w io.Writer, opts Options) error {
	data, err := Render(wb, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ExportFile writes wb to path, replacing any existing file.
func ExportFile(wb *models.Workbook, path string, opts Options) error {
	data, err := Render(wb, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Render builds the .xlsx package bytes for wb.
func Render(wb *models.Workbook, opts Options) ([]byte, error) {
	if wb == nil {
		return nil, ErrNilWorkbook
	}
	sheets := wb.Sheets()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}
	log := opts.logger()

	f := excelize.NewFile()
	defer f.Close()

	styles := writer.NewStyleCache(f)
	req := writer.ProtectionRequest{
		Sheets:   make(map[string]*protect.Descriptor),
		Workbook: wb.Protection(),
		Flags: writer.ProtectionFlags{
			Objects:       opts.ShouldProtectObjects(),
			Scenarios:     opts.ShouldProtectScenarios(),
			LockStructure: opts.ShouldLockStructure(),
			LockWindows:   opts.ShouldLockWindows(),
		},
	}

	seen := make(map[string]bool, len(sheets))
	defaultName := f.GetSheetName(0)
	for i, sheet := range sheets {
		name := sheet.Name()
		// Sheet names compare case-insensitively in a package.
		key := strings.ToLower(name)
		if seen[key] {
			return nil, NewExportError(name, "sheet", ErrDuplicateSheetName)
		}
		seen[key] = true

		if i == 0 {
			err := f.SetSheetName(defaultName, name)
			if err != nil {
				return nil, NewExportError(name, "sheet", err)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, NewExportError(name, "sheet", err)
		}

		if err := writeSheet(f, sheet, styles, log); err != nil {
			return nil, err
		}
		if desc := sheet.Protection(); desc != nil {
			req.Sheets[name] = desc
		}
	}

	skipped, err := writer.WriteDocProperties(f, wb.Options())
	if err != nil {
		return nil, fmt.Errorf("document properties: %w", err)
	}
	if len(skipped) > 0 {
		log.WithField("fields", skipped).Warn("unsupported document properties skipped")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	out, err := writer.ApplyProtection(buf.Bytes(), req)
	if err != nil {
		return nil, fmt.Errorf("protection: %w", err)
	}
	log.WithFields(logrus.Fields{
		"sheets":    len(sheets),
		"styles":    styles.Len(),
		"protected": len(req.Sheets),
		"workbook":  req.Workbook != nil,
	}).Debug("workbook rendered")

	return out, nil
}

func writeSheet(f *excelize.File, sheet *models.Sheet, styles *writer.StyleCache, log logrus.FieldLogger) error {
	name := sheet.Name()
	fields := logrus.Fields{"sheet": name}

	// The table is dense up to the used range, so check it fits a worksheet first.
	if bounds, ok := sheet.Bounds(); ok {
		if bounds.C2 > excelize.MaxColumns || bounds.R2 > excelize.TotalRows {
			return NewExportError(name, "cells", fmt.Errorf("%w: used range ends at column %d row %d, beyond %d columns or %d rows",
				models.ErrInvalidCoordinate, bounds.C2, bounds.R2, excelize.MaxColumns, excelize.TotalRows))
		}
		if ref, err := bounds.Ref(); err == nil {
			fields["range"] = ref
		}
	}

	written, err := writer.WriteCells(f, name, sheet.Table(), styles)
	if err != nil {
		return NewExportError(name, "cells", err)
	}
	fields["cells"] = written

	skipped, err := writer.WritePage(f, name, sheet.Page())
	if err != nil {
		return NewExportError(name, "page", err)
	}
	if len(skipped) > 0 {
		log.WithFields(fields).WithField("fields", skipped).Warn("unsupported page setup skipped")
	}

	log.WithFields(fields).Debug("sheet written")
	return nil
}
