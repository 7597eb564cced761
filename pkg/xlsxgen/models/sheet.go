package models

import (
	"github.com/ukaji3/xlsxgen-go/pkg/xlsxgen/protect"
)

// SheetOptions configures NewSheet. The zero value is valid.
type SheetOptions struct {
	// Order is the display sort key. Ties keep insertion order.
	Order int
	// ID is used verbatim when non-zero; otherwise one is issued by IDs.
	ID SheetID
	// IDs issues the ID. If nil, DefaultIDs is used.
	IDs *IDCounter
	// Page holds print settings. It is deep-copied.
	Page *Page
	// Protection is the password descriptor locking the sheet.
	Protection *protect.Descriptor
}

// Sheet is a named collection of cells keyed by normalized position.
//
// The sheet owns its cells: AddCell stores a copy, and Cell and Cells
// return copies, so a stored cell can only be repositioned through
// MoveCell.
type Sheet struct {
	id         SheetID
	name       string
	order      int
	cells      map[string]*Cell
	page       Page
	protection *protect.Descriptor
}

// NewSheet creates a sheet holding copies of cells. Cells sharing a
// position collapse to the last one.
func NewSheet(name string, cells []*Cell, opts *SheetOptions) *Sheet {
	if opts == nil {
		opts = &SheetOptions{}
	}
	ids := opts.IDs
	if ids == nil {
		ids = DefaultIDs
	}

	s := &Sheet{
		id:    opts.ID,
		name:  name,
		order: opts.Order,
		cells: make(map[string]*Cell, len(cells)),
	}
	if s.id == 0 {
		s.id = ids.Next()
	} else {
		ids.Observe(s.id)
	}
	if opts.Page != nil {
		s.page = deepClone(*opts.Page)
	}
	s.protection = opts.Protection.Clone()

	for _, c := range cells {
		s.AddCell(c)
	}
	return s
}

// ID returns the sheet ID.
func (s *Sheet) ID() SheetID { return s.id }

// Name returns the sheet name.
func (s *Sheet) Name() string { return s.name }

// SetName renames the sheet.
func (s *Sheet) SetName(name string) { s.name = name }

// Order returns the display sort key.
func (s *Sheet) Order() int { return s.order }

// SetOrder changes the display sort key.
func (s *Sheet) SetOrder(order int) { s.order = order }

// Page returns a copy of the print settings.
func (s *Sheet) Page() Page { return deepClone(s.page) }

// SetPage replaces the print settings with a copy of p.
func (s *Sheet) SetPage(p Page) { s.page = deepClone(p) }

// Protection returns a copy of the password descriptor, or nil.
func (s *Sheet) Protection() *protect.Descriptor { return s.protection.Clone() }

// SetProtection attaches a password descriptor. nil removes protection.
func (s *Sheet) SetProtection(d *protect.Descriptor) { s.protection = d.Clone() }

// AddCell stores a copy of c at its position, replacing any cell there.
func (s *Sheet) AddCell(c *Cell) {
	if c == nil {
		return
	}
	s.cells[c.Position()] = c.Copy()
}

// key normalizes position the way NewCell does, so a malformed position
// names A1 here too.
func key(position string) string {
	pos, _ := ParsePosition(position)
	return pos
}

// DeleteCell removes the cell at position. Deleting a missing cell is a
// no-op.
func (s *Sheet) DeleteCell(position string) {
	delete(s.cells, key(position))
}

// Cell returns a copy of the cell at position.
func (s *Sheet) Cell(position string) (*Cell, bool) {
	c, ok := s.cells[key(position)]
	if !ok {
		return nil, false
	}
	return c.Copy(), true
}

// MoveCell re-keys the cell at from to to, replacing any cell at to.
// It reports whether a cell was moved.
func (s *Sheet) MoveCell(from, to string) bool {
	src := key(from)
	c, ok := s.cells[src]
	if !ok {
		return false
	}
	delete(s.cells, src)
	c.SetPosition(to)
	s.cells[c.Position()] = c
	return true
}

// Cells returns copies of all cells in unspecified order.
func (s *Sheet) Cells() []*Cell {
	out := make([]*Cell, 0, len(s.cells))
	for _, c := range s.cells {
		out = append(out, c.Copy())
	}
	return out
}

// Len returns the number of cells.
func (s *Sheet) Len() int { return len(s.cells) }

// Clear removes every cell.
func (s *Sheet) Clear() { clear(s.cells) }

// Bounds returns the smallest range covering every cell, or false when
// the sheet is empty.
func (s *Sheet) Bounds() (PrintArea, bool) {
	if len(s.cells) == 0 {
		return PrintArea{}, false
	}

	minRow, maxRow, minCol, maxCol := -1, -1, -1, -1
	for _, c := range s.cells {
		co := c.coordinate
		if minRow < 0 || co.Row < minRow {
			minRow = co.Row
		}
		if maxRow < 0 || co.Row > maxRow {
			maxRow = co.Row
		}
		if minCol < 0 || co.Col < minCol {
			minCol = co.Col
		}
		if maxCol < 0 || co.Col > maxCol {
			maxCol = co.Col
		}
	}

	return PrintArea{R1: minRow, C1: minCol, R2: maxRow, C2: maxCol}, true
}

// Table lays the cells out in a sparse grid, see Table.
func (s *Sheet) Table() Table {
	var rows Table
	for _, c := range s.cells {
		co := c.coordinate
		if co.Row >= len(rows) {
			rows = append(rows, make(Table, co.Row+1-len(rows))...)
		}
		row := rows[co.Row]
		if co.Col >= len(row) {
			row = append(row, make([]*Cell, co.Col+1-len(row))...)
			rows[co.Row] = row
		}
		row[co.Col] = c.Copy()
	}
	return rows
}

// Copy returns an independent deep copy of s with the same ID.
func (s *Sheet) Copy() *Sheet {
	cp := &Sheet{
		id:         s.id,
		name:       s.name,
		order:      s.order,
		cells:      make(map[string]*Cell, len(s.cells)),
		page:       deepClone(s.page),
		protection: s.protection.Clone(),
	}
	for pos, c := range s.cells {
		cp.cells[pos] = c.Copy()
	}
	return cp
}

// Table is a row-major sparse grid of cells indexed by 1-based row then
// 1-based column, so t[row][col]. Index 0 of both axes is unused, absent
// rows are nil and each row is only as long as its right-most cell.
type Table [][]*Cell

// At returns the cell at (col, row), or nil.
func (t Table) At(col, row int) *Cell {
	if row < 1 || row >= len(t) || col < 1 || col >= len(t[row]) {
		return nil
	}
	return t[row][col]
}

// RowCount returns the highest populated row number.
func (t Table) RowCount() int {
	if len(t) == 0 {
		return 0
	}
	return len(t) - 1
}

// ColCount returns the highest populated column number across all rows.
func (t Table) ColCount() int {
	n := 0
	for _, row := range t {
		if len(row) > 0 {
			n = max(n, len(row)-1)
		}
	}
	return n
}
