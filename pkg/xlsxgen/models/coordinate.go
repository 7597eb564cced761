// Package models defines the in-memory workbook document model.
//
// A Workbook owns Sheets, a Sheet owns Cells keyed by their normalized
// position. The model is synchronous and not safe for concurrent mutation;
// callers sharing a Workbook across goroutines must hold one lock per
// Workbook around mutating calls.
package models

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidCoordinate indicates a column letter or number outside the
// bijective base-26 range.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// CoordinateError describes the input that failed coordinate conversion.
type CoordinateError struct {
	Input  string
	Reason string
	Err    error
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("%v %q: %s", e.Err, e.Input, e.Reason)
}

func (e *CoordinateError) Unwrap() error {
	return e.Err
}

func newCoordinateError(input, reason string) *CoordinateError {
	return &CoordinateError{
		Input:  input,
		Reason: reason,
		Err:    ErrInvalidCoordinate,
	}
}

// Coordinate is a 1-based (column, row) pair.
type Coordinate struct {
	// Col is the column index (A=1).
	Col int `json:"col" yaml:"col"`
	// Row is the row index (1-based).
	Row int `json:"row" yaml:"row"`
}

// LettersToNumber converts column letters to a 1-based column index
// (A=1, Z=26, AA=27). Letters are case-insensitive.
func LettersToNumber(letters string) (int, error) {
	if letters == "" {
		return 0, newCoordinateError(letters, "empty column")
	}

	result := 0
	for i := 0; i < len(letters); i++ {
		ch := letters[i]
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		if ch < 'A' || ch > 'Z' {
			return 0, newCoordinateError(letters, fmt.Sprintf("character %q out of range A-Z", letters[i]))
		}
		v := int(ch-'A') + 1
		if result > (math.MaxInt-v)/26 {
			return 0, newCoordinateError(letters, "column overflows int")
		}
		result = result*26 + v
	}

	return result, nil
}

// NumberToLetters converts a 1-based column index to column letters.
func NumberToLetters(column int) (string, error) {
	if column < 1 {
		return "", newCoordinateError(fmt.Sprint(column), "column must be a positive integer")
	}

	var buf [16]byte
	i := len(buf)
	for column > 0 {
		column--
		i--
		buf[i] = byte('A' + column%26)
		column /= 26
	}

	return string(buf[i:]), nil
}

// CoordinateName formats a coordinate as a cell name, e.g. (2, 3) -> "B3".
func CoordinateName(c Coordinate) (string, error) {
	letters, err := NumberToLetters(c.Col)
	if err != nil {
		return "", err
	}
	if c.Row < 1 {
		return "", newCoordinateError(fmt.Sprint(c.Row), "row must be a positive integer")
	}
	var b strings.Builder
	b.WriteString(letters)
	fmt.Fprint(&b, c.Row)
	return b.String(), nil
}
