package xlsxgen

import (
	"errors"
	"fmt"
)

// ErrNilWorkbook indicates Export was called without a workbook.
var ErrNilWorkbook = errors.New("nil workbook")

// ErrNoSheets indicates the workbook has no sheet to write.
var ErrNoSheets = errors.New("workbook has no sheets")

// ErrDuplicateSheetName indicates two sheets share a name.
var ErrDuplicateSheetName = errors.New("duplicate sheet name")

// ExportError represents an error while writing one sheet.
type ExportError struct {
	SheetName string
	Component string // "sheet", "cells", "page"
	Err       error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError creates a new ExportError.
func NewExportError(sheetName, component string, err error) *ExportError {
	return &ExportError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
