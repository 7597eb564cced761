package writer

import (
	"fmt"
	"strings"

	"github.com/ukaji3/xlsxgen-go/pkg/xlsxgen/models"
	"github.com/xuri/excelize/v2"
)

// PrintAreaName is the reserved defined name of a sheet's print area.
const PrintAreaName = "_xlnm.Print_Area"

// WritePage applies margins, page setup, print area and background of
// page to sheetName. It returns the names of setup fields excelize cannot
// express, which are skipped.
func WritePage(f *excelize.File, sheetName string, page models.Page) ([]string, error) {
	if m := page.Margins; m != nil {
		err := f.SetPageMargins(sheetName, &excelize.PageLayoutMarginsOptions{
			Bottom: m.Bottom,
			Footer: m.Footer,
			Header: m.Header,
			Left:   m.Left,
			Right:  m.Right,
			Top:    m.Top,
		})
		if err != nil {
			return nil, fmt.Errorf("margins: %w", err)
		}
	}

	var skipped []string
	if s := page.Setup; s != nil {
		if err := f.SetPageLayout(sheetName, pageLayout(s)); err != nil {
			return nil, fmt.Errorf("page setup: %w", err)
		}
		skipped = unsupportedSetup(s)
	}

	if page.PrintArea != "" {
		area, err := models.ParseRange(page.PrintArea)
		if err != nil {
			return nil, fmt.Errorf("print area: %w", err)
		}
		ref, err := PrintAreaReference(sheetName, area)
		if err != nil {
			return nil, fmt.Errorf("print area: %w", err)
		}
		err = f.SetDefinedName(&excelize.DefinedName{
			Name:     PrintAreaName,
			RefersTo: ref,
			Scope:    sheetName,
		})
		if err != nil {
			return nil, fmt.Errorf("print area: %w", err)
		}
	}

	if page.PictureURL != "" {
		if err := f.SetSheetBackground(sheetName, page.PictureURL); err != nil {
			return nil, fmt.Errorf("background picture: %w", err)
		}
	}

	return skipped, nil
}

// PrintAreaReference formats area as a defined-name reference, e.g.
// 'My Sheet'!$A$1:$D$10.
func PrintAreaReference(sheetName string, area models.PrintArea) (string, error) {
	ref, err := area.AbsoluteRef()
	if err != nil {
		return "", err
	}
	return "'" + strings.ReplaceAll(sheetName, "'", "''") + "'!" + ref, nil
}

func pageLayout(s *models.PageSetup) *excelize.PageLayoutOptions {
	opts := &excelize.PageLayoutOptions{
		FirstPageNumber: s.FirstPageNumber,
		AdjustTo:        s.Scale,
		FitToHeight:     s.FitToHeight,
		FitToWidth:      s.FitToWidth,
		BlackAndWhite:   s.BlackAndWhite,
	}
	if s.PaperSize != nil {
		size := int(*s.PaperSize)
		opts.Size = &size
	}
	if s.Orientation == "portrait" || s.Orientation == "landscape" {
		orientation := s.Orientation
		opts.Orientation = &orientation
	}
	return opts
}

func unsupportedSetup(s *models.PageSetup) []string {
	var names []string
	add := func(set bool, name string) {
		if set {
			names = append(names, name)
		}
	}
	add(s.CellComments != "", "cellComments")
	add(s.Copies != nil, "copies")
	add(s.Draft != nil, "draft")
	add(s.Errors != "", "errors")
	add(s.HorizontalDPI != nil, "horizontalDpi")
	add(s.PageOrder != "", "pageOrder")
	add(s.UseFirstPageNumber != nil, "useFirstPageNumber")
	add(s.UsePrinterDefaults != nil, "usePrinterDefaults")
	add(s.VerticalDPI != nil, "verticalDpi")
	return names
}
