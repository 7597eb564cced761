// Package xlsxgen writes in-memory workbooks to .xlsx packages.
package xlsxgen

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Options configures export behavior.
type Options struct {
	// Logger receives per-sheet progress. If nil, output is discarded.
	Logger logrus.FieldLogger
	// ProtectObjects specifies whether protected sheets lock drawing objects.
	// If nil, defaults to true.
	ProtectObjects *bool
	// ProtectScenarios specifies whether protected sheets lock scenarios.
	// If nil, defaults to true.
	ProtectScenarios *bool
	// LockStructure specifies whether a protected workbook locks its sheet
	// structure. If nil, defaults to true.
	LockStructure *bool
	// LockWindows specifies whether a protected workbook locks its windows.
	// If nil, defaults to false.
	LockWindows *bool
}

// DefaultOptions returns default export options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldProtectObjects returns whether protected sheets lock objects.
func (o Options) ShouldProtectObjects() bool {
	if o.ProtectObjects != nil {
		return *o.ProtectObjects
	}
	return true
}

// ShouldProtectScenarios returns whether protected sheets lock scenarios.
func (o Options) ShouldProtectScenarios() bool {
	if o.ProtectScenarios != nil {
		return *o.ProtectScenarios
	}
	return true
}

// ShouldLockStructure returns whether a protected workbook locks structure.
func (o Options) ShouldLockStructure() bool {
	if o.LockStructure != nil {
		return *o.LockStructure
	}
	return true
}

// ShouldLockWindows returns whether a protected workbook locks windows.
func (o Options) ShouldLockWindows() bool {
	if o.LockWindows != nil {
		return *o.LockWindows
	}
	return false
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
