package input

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat indicates a definition file extension with no codec.
var ErrUnsupportedFormat = errors.New("unsupported definition format")

// ErrEmptyDefinition indicates a definition without sheets.
var ErrEmptyDefinition = errors.New("definition has no sheets")

// ErrInvalidValue indicates a cell definition without exactly one value.
var ErrInvalidValue = errors.New("invalid cell value")

// DefinitionError represents an error in one part of a definition.
type DefinitionError struct {
	Sheet string
	Cell  string // empty for sheet-level errors
	Err   error
}

func (e *DefinitionError) Error() string {
	if e.Cell == "" {
		return fmt.Sprintf("definition error in sheet %q: %v", e.Sheet, e.Err)
	}
	return fmt.Sprintf("definition error in sheet %q cell %q: %v", e.Sheet, e.Cell, e.Err)
}

func (e *DefinitionError) Unwrap() error {
	return e.Err
}

// NewDefinitionError creates a new DefinitionError.
func NewDefinitionError(sheet, cell string, err error) *DefinitionError {
	return &DefinitionError{
		Sheet: sheet,
		Cell:  cell,
		Err:   err,
	}
}
