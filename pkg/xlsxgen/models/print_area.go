package models

import (
	"strings"
)

// PrintArea represents cell coordinate bounds of a rectangular range.
type PrintArea struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1" yaml:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1" yaml:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2" yaml:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2" yaml:"c2"`
}

// ParseRange parses a range such as "A1:D10" or "$A$1:$D$10". A single
// address is accepted as a one-cell range. Corners are reordered so that
// R1 <= R2 and C1 <= C2.
func ParseRange(ref string) (PrintArea, error) {
	parts := strings.Split(ref, ":")
	if len(parts) > 2 {
		return PrintArea{}, newCoordinateError(ref, "range has more than two corners")
	}

	_, start, err := ParsePositionStrict(strings.TrimSpace(parts[0]))
	if err != nil {
		return PrintArea{}, err
	}
	end := start
	if len(parts) == 2 {
		if _, end, err = ParsePositionStrict(strings.TrimSpace(parts[1])); err != nil {
			return PrintArea{}, err
		}
	}

	return PrintArea{
		R1: min(start.Row, end.Row),
		C1: min(start.Col, end.Col),
		R2: max(start.Row, end.Row),
		C2: max(start.Col, end.Col),
	}, nil
}

// Contains reports whether c lies inside the area.
func (a PrintArea) Contains(c Coordinate) bool {
	return c.Row >= a.R1 && c.Row <= a.R2 && c.Col >= a.C1 && c.Col <= a.C2
}

// Ref formats the area as "A1:D10".
func (a PrintArea) Ref() (string, error) {
	return a.format(false)
}

// AbsoluteRef formats the area as "$A$1:$D$10", the form used by defined names.
func (a PrintArea) AbsoluteRef() (string, error) {
	return a.format(true)
}

func (a PrintArea) format(absolute bool) (string, error) {
	start, err := cornerName(a.C1, a.R1, absolute)
	if err != nil {
		return "", err
	}
	end, err := cornerName(a.C2, a.R2, absolute)
	if err != nil {
		return "", err
	}
	return start + ":" + end, nil
}

func cornerName(col, row int, absolute bool) (string, error) {
	name, err := CoordinateName(Coordinate{Col: col, Row: row})
	if err != nil || !absolute {
		return name, err
	}
	letters, _ := NumberToLetters(col)
	return "$" + letters + "$" + name[len(letters):], nil
}
