package models

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultPosition is the position malformed addresses normalize to.
const DefaultPosition = "A1"

var positionPattern = regexp.MustCompile(`(?i)^\$?([A-Z]+)\$?([1-9][0-9]*)$`)

// PositionPolicy selects how malformed addresses are treated.
type PositionPolicy string

const (
	// PolicyFallback silently normalizes malformed addresses to A1.
	PolicyFallback PositionPolicy = "fallback"
	// PolicyStrict rejects malformed addresses with ErrInvalidCoordinate.
	PolicyStrict PositionPolicy = "strict"
)

// ParsePosition normalizes a cell address. "$" anchors are dropped and
// letters are upper-cased. Anything that is not a valid address
// (including out-of-range columns or rows) yields "A1" at (1, 1).
func ParsePosition(raw string) (string, Coordinate) {
	pos, coord, err := ParsePositionStrict(raw)
	if err != nil {
		return DefaultPosition, Coordinate{Col: 1, Row: 1}
	}
	return pos, coord
}

// ParsePositionStrict is ParsePosition without the fallback.
func ParsePositionStrict(raw string) (string, Coordinate, error) {
	m := positionPattern.FindStringSubmatch(raw)
	if m == nil {
		return "", Coordinate{}, newCoordinateError(raw, "not a cell address")
	}

	letters := strings.ToUpper(m[1])
	col, err := LettersToNumber(letters)
	if err != nil {
		return "", Coordinate{}, err
	}
	row, err := strconv.Atoi(m[2])
	if err != nil {
		return "", Coordinate{}, newCoordinateError(raw, "row out of range")
	}

	return letters + m[2], Coordinate{Col: col, Row: row}, nil
}

// ParsePositionWith applies policy to raw. An empty policy means fallback.
func ParsePositionWith(raw string, policy PositionPolicy) (string, Coordinate, error) {
	if policy == PolicyStrict {
		return ParsePositionStrict(raw)
	}
	pos, coord := ParsePosition(raw)
	return pos, coord, nil
}
