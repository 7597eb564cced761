package models

import (
	"sort"
	"time"

	"github.com/ukaji3/xlsxgen-go/pkg/xlsxgen/protect"
)

// AppProperties is application metadata written to docProps/app.xml.
type AppProperties struct {
	Company           string `json:"company,omitempty" yaml:"company,omitempty"`
	DocSecurity       *int   `json:"docSecurity,omitempty" yaml:"docSecurity,omitempty"`
	HyperlinksChanged *bool  `json:"hyperlinksChanged,omitempty" yaml:"hyperlinksChanged,omitempty"`
	LinksUpToDate     *bool  `json:"linksUpToDate,omitempty" yaml:"linksUpToDate,omitempty"`
	Name              string `json:"name,omitempty" yaml:"name,omitempty"`
	ScaleCrop         *bool  `json:"scaleCrop,omitempty" yaml:"scaleCrop,omitempty"`
	SharedDoc         *bool  `json:"sharedDoc,omitempty" yaml:"sharedDoc,omitempty"`
	Version           string `json:"version,omitempty" yaml:"version,omitempty"`
}

// CoreProperties is authoring metadata written to docProps/core.xml.
type CoreProperties struct {
	Creator        string     `json:"creator,omitempty" yaml:"creator,omitempty"`
	DateCreated    *time.Time `json:"dateCreated,omitempty" yaml:"dateCreated,omitempty"`
	DateModified   *time.Time `json:"dateModified,omitempty" yaml:"dateModified,omitempty"`
	LastModifiedBy string     `json:"lastModifiedBy,omitempty" yaml:"lastModifiedBy,omitempty"`
}

// WorkbookOptions is document-level metadata passed through to the writer.
type WorkbookOptions struct {
	App  *AppProperties  `json:"app,omitempty" yaml:"app,omitempty"`
	Core *CoreProperties `json:"core,omitempty" yaml:"core,omitempty"`
}

// Clone returns a deep copy of o. Timestamps are copied by value.
func (o WorkbookOptions) Clone() WorkbookOptions {
	var out WorkbookOptions
	if o.App != nil {
		app := deepClone(*o.App)
		out.App = &app
	}
	if o.Core != nil {
		core := *o.Core
		if o.Core.DateCreated != nil {
			t := *o.Core.DateCreated
			core.DateCreated = &t
		}
		if o.Core.DateModified != nil {
			t := *o.Core.DateModified
			core.DateModified = &t
		}
		out.Core = &core
	}
	return out
}

type sheetEntry struct {
	sheet *Sheet
	seq   uint64
}

// Workbook is an ordered collection of sheets keyed by ID. It always
// holds at least one sheet.
type Workbook struct {
	sheets     map[SheetID]sheetEntry
	seq        uint64
	options    WorkbookOptions
	protection *protect.Descriptor
}

// NewWorkbook creates a workbook seeded with a copy of defaultSheet. A nil
// defaultSheet is replaced by an empty "Sheet1".
func NewWorkbook(defaultSheet *Sheet, opts *WorkbookOptions) *Workbook {
	if defaultSheet == nil {
		defaultSheet = NewSheet("Sheet1", nil, nil)
	}
	wb := &Workbook{sheets: make(map[SheetID]sheetEntry)}
	wb.AddSheet(defaultSheet)
	if opts != nil {
		wb.options = opts.Clone()
	}
	return wb
}

// AddSheet stores a copy of s, replacing a sheet with the same ID. A
// replaced sheet keeps its original insertion rank for tie-breaking.
func (wb *Workbook) AddSheet(s *Sheet) {
	if s == nil {
		return
	}
	e, ok := wb.sheets[s.id]
	if !ok {
		wb.seq++
		e.seq = wb.seq
	}
	e.sheet = s.Copy()
	wb.sheets[s.id] = e
}

// DeleteSheet removes the sheet with id. The last remaining sheet is never
// removed. It reports whether a sheet was deleted.
func (wb *Workbook) DeleteSheet(id SheetID) bool {
	if _, ok := wb.sheets[id]; !ok || len(wb.sheets) == 1 {
		return false
	}
	delete(wb.sheets, id)
	return true
}

// Sheet returns a copy of the sheet with id.
func (wb *Workbook) Sheet(id SheetID) (*Sheet, bool) {
	e, ok := wb.sheets[id]
	if !ok {
		return nil, false
	}
	return e.sheet.Copy(), true
}

// Sheets returns copies of all sheets sorted by Order, ties in insertion
// order.
func (wb *Workbook) Sheets() []*Sheet {
	entries := make([]sheetEntry, 0, len(wb.sheets))
	for _, e := range wb.sheets {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].sheet.order != entries[j].sheet.order {
			return entries[i].sheet.order < entries[j].sheet.order
		}
		return entries[i].seq < entries[j].seq
	})

	out := make([]*Sheet, len(entries))
	for i, e := range entries {
		out[i] = e.sheet.Copy()
	}
	return out
}

// Len returns the number of sheets.
func (wb *Workbook) Len() int { return len(wb.sheets) }

// Options returns a copy of the document metadata.
func (wb *Workbook) Options() WorkbookOptions { return wb.options.Clone() }

// SetOptions replaces the document metadata with a copy of o.
func (wb *Workbook) SetOptions(o WorkbookOptions) { wb.options = o.Clone() }

// Protection returns a copy of the workbook structure password, or nil.
func (wb *Workbook) Protection() *protect.Descriptor { return wb.protection.Clone() }

// SetProtection attaches a workbook structure password. nil removes it.
func (wb *Workbook) SetProtection(d *protect.Descriptor) { wb.protection = d.Clone() }
