package models

// PaperSize is a printer paper size code.
type PaperSize int

// Paper sizes.
const (
	PaperLetter     PaperSize = 1
	PaperLegal      PaperSize = 5
	PaperA3         PaperSize = 8
	PaperA4         PaperSize = 9
	PaperA5         PaperSize = 11
	PaperB4         PaperSize = 12
	PaperEnvelope10 PaperSize = 20
	PaperEnvelopeDL PaperSize = 27
	PaperEnvelopeC6 PaperSize = 31
	Paper8x13       PaperSize = 41 // Folio
	Paper100x148    PaperSize = 44 // mm, A6 photo card
	Paper10x15      PaperSize = 45 // cm photo (4x6 in)
	Paper13x18      PaperSize = 46 // cm photo (5x7 in)
	Paper9x13       PaperSize = 47 // cm photo (3.5x5 in)
	Paper5x8        PaperSize = 48 // in
	Paper20x25      PaperSize = 49 // cm (8x10 in)
	Paper16K        PaperSize = 64
	Paper8K         PaperSize = 65
	PaperA2         PaperSize = 66
	PaperA3Plus     PaperSize = 67
	PaperB3         PaperSize = 68
	PaperA6         PaperSize = 70
	PaperWide16x9   PaperSize = 71
	PaperCustom     PaperSize = 256
)

// Margins are page margins in inches.
type Margins struct {
	Bottom *float64 `json:"bottom,omitempty" yaml:"bottom,omitempty"`
	Footer *float64 `json:"footer,omitempty" yaml:"footer,omitempty"`
	Header *float64 `json:"header,omitempty" yaml:"header,omitempty"`
	Left   *float64 `json:"left,omitempty" yaml:"left,omitempty"`
	Right  *float64 `json:"right,omitempty" yaml:"right,omitempty"`
	Top    *float64 `json:"top,omitempty" yaml:"top,omitempty"`
}

// PageSetup holds printer settings of a sheet.
type PageSetup struct {
	BlackAndWhite      *bool      `json:"blackAndWhite,omitempty" yaml:"blackAndWhite,omitempty"`
	CellComments       string     `json:"cellComments,omitempty" yaml:"cellComments,omitempty"` // none|asDisplayed|atEnd
	Copies             *int       `json:"copies,omitempty" yaml:"copies,omitempty"`
	Draft              *bool      `json:"draft,omitempty" yaml:"draft,omitempty"`
	Errors             string     `json:"errors,omitempty" yaml:"errors,omitempty"` // displayed|blank|dash|na
	FirstPageNumber    *uint      `json:"firstPageNumber,omitempty" yaml:"firstPageNumber,omitempty"`
	FitToHeight        *int       `json:"fitToHeight,omitempty" yaml:"fitToHeight,omitempty"`
	FitToWidth         *int       `json:"fitToWidth,omitempty" yaml:"fitToWidth,omitempty"`
	HorizontalDPI      *int       `json:"horizontalDpi,omitempty" yaml:"horizontalDpi,omitempty"`
	Orientation        string     `json:"orientation,omitempty" yaml:"orientation,omitempty"` // default|portrait|landscape
	PageOrder          string     `json:"pageOrder,omitempty" yaml:"pageOrder,omitempty"`     // downThenOver|overThenDown
	PaperSize          *PaperSize `json:"paperSize,omitempty" yaml:"paperSize,omitempty"`
	Scale              *uint      `json:"scale,omitempty" yaml:"scale,omitempty"`
	UseFirstPageNumber *bool      `json:"useFirstPageNumber,omitempty" yaml:"useFirstPageNumber,omitempty"`
	UsePrinterDefaults *bool      `json:"usePrinterDefaults,omitempty" yaml:"usePrinterDefaults,omitempty"`
	VerticalDPI        *int       `json:"verticalDpi,omitempty" yaml:"verticalDpi,omitempty"`
}

// Page holds print and layout settings of a sheet.
type Page struct {
	// PrintArea is a range such as "A1:D10".
	PrintArea string `json:"printArea,omitempty" yaml:"printArea,omitempty"`
	// PictureURL is the path of the sheet background image.
	PictureURL string     `json:"pictureUrl,omitempty" yaml:"pictureUrl,omitempty"`
	Margins    *Margins   `json:"margins,omitempty" yaml:"margins,omitempty"`
	Setup      *PageSetup `json:"setup,omitempty" yaml:"setup,omitempty"`
}
