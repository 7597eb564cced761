// Package writer emits the document model through excelize.
package writer

import (
	"errors"
	"fmt"
	"math"

	"github.com/ukaji3/xlsxgen-go/pkg/xlsxgen/models"
	"github.com/xuri/excelize/v2"
)

// ErrNonFiniteNumber indicates a NaN or infinite number, which has no
// cell literal.
var ErrNonFiniteNumber = errors.New("non-finite number")

// WriteCells writes every cell of table to sheetName and returns the number
// written. The absolute value is the literal stored: text cells become
// strings, numbers and dates become numeric values.
func WriteCells(f *excelize.File, sheetName string, table models.Table, styles *StyleCache) (int, error) {
	written := 0
	for rowNum := 1; rowNum < len(table); rowNum++ {
		for colNum, cell := range table[rowNum] {
			if colNum == 0 || cell == nil {
				continue
			}
			if err := writeCell(f, sheetName, cell, styles); err != nil {
				return written, fmt.Errorf("cell %s: %w", cell.Position(), err)
			}
			written++
		}
	}
	return written, nil
}

func writeCell(f *excelize.File, sheetName string, cell *models.Cell, styles *StyleCache) error {
	name := cell.Position()
	if n, ok := cell.Value().Number(); ok && (math.IsNaN(n) || math.IsInf(n, 0)) {
		return fmt.Errorf("%w: %v", ErrNonFiniteNumber, n)
	}

	var err error
	if cell.Value().Kind() == models.KindText {
		err = f.SetCellStr(sheetName, name, cell.AbsoluteValue())
	} else {
		err = f.SetCellDefault(sheetName, name, cell.AbsoluteValue())
	}
	if err != nil {
		return err
	}

	if styles == nil {
		return nil
	}
	styleID, err := styles.StyleID(cell.Attributes())
	if err != nil || styleID == 0 {
		return err
	}
	return f.SetCellStyle(sheetName, name, name, styleID)
}
