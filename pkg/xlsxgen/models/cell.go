package models

// Cell is an addressable value with optional style attributes.
//
// Position, coordinate and absolute value are derived together by the
// setters, so they always reflect the last assignment.
type Cell struct {
	position   string
	coordinate Coordinate
	value      Value
	absolute   string
	attributes Attributes
}

// NewCell creates a cell at position. A malformed position is placed at A1.
// attrs may be nil; otherwise it is deep-copied.
func NewCell(position string, value Value, attrs *Attributes) *Cell {
	c := &Cell{}
	c.SetPosition(position)
	c.SetValue(value)
	if attrs != nil {
		c.attributes = deepClone(*attrs)
	}
	return c
}

// NewCellStrict is NewCell but rejects malformed positions.
func NewCellStrict(position string, value Value, attrs *Attributes) (*Cell, error) {
	pos, _, err := ParsePositionStrict(position)
	if err != nil {
		return nil, err
	}
	return NewCell(pos, value, attrs), nil
}

// Position returns the normalized position, e.g. "B3".
func (c *Cell) Position() string { return c.position }

// Coordinate returns the 1-based (column, row) of the cell.
func (c *Cell) Coordinate() Coordinate { return c.coordinate }

// SetPosition normalizes and stores position along with its coordinate.
// A cell stored in a Sheet must be moved with Sheet.MoveCell instead.
func (c *Cell) SetPosition(position string) {
	c.position, c.coordinate = ParsePosition(position)
}

// Value returns the typed value.
func (c *Cell) Value() Value { return c.value }

// SetValue stores v and recomputes the absolute value.
func (c *Cell) SetValue(v Value) {
	c.value = v
	c.absolute = v.Serialize()
}

// AbsoluteValue returns the canonical literal of the value: numbers in
// decimal, text verbatim, dates as a day serial from 1900-01-01.
func (c *Cell) AbsoluteValue() string { return c.absolute }

// Attributes returns a copy of the style bag.
func (c *Cell) Attributes() Attributes {
	return deepClone(c.attributes)
}

// SetAttributes replaces the style bag with a copy of a.
func (c *Cell) SetAttributes(a Attributes) {
	c.attributes = deepClone(a)
}

// Copy returns an independent deep copy of c.
func (c *Cell) Copy() *Cell {
	return &Cell{
		position:   c.position,
		coordinate: c.coordinate,
		value:      c.value,
		absolute:   c.absolute,
		attributes: deepClone(c.attributes),
	}
}
