package models

// ARGB is a color packed as 0xAARRGGBB.
type ARGB uint32

// BorderStyle is the line style of one cell edge.
type BorderStyle string

// Border styles.
const (
	BorderDashed BorderStyle = "dashed"
	BorderDotted BorderStyle = "dotted"
	BorderDouble BorderStyle = "double"
	BorderMedium BorderStyle = "medium"
	BorderThick  BorderStyle = "thick"
	BorderThin   BorderStyle = "thin"
)

// ReadingOrder is the text direction of a cell.
type ReadingOrder int

// Reading orders.
const (
	ReadingOrderDefault ReadingOrder = 0
	ReadingOrderLTR     ReadingOrder = 1
	ReadingOrderRTL     ReadingOrder = 2
)

// NumberFormat is a built-in number format id.
type NumberFormat int

// Built-in number formats. The comment on each is its format code.
const (
	FormatGeneral     NumberFormat = 0  // General
	FormatNumber1     NumberFormat = 1  // 0
	FormatNumber2     NumberFormat = 2  // 0.00
	FormatNumber3     NumberFormat = 3  // #,##0
	FormatNumber4     NumberFormat = 4  // #,##0.00
	FormatCurrency1   NumberFormat = 5  // $#,##0;($#,##0)
	FormatCurrency2   NumberFormat = 6  // $#,##0;[Red]($#,##0)
	FormatCurrency3   NumberFormat = 7  // $#,##0.00;($#,##0.00)
	FormatCurrency4   NumberFormat = 8  // $#,##0.00;[Red]($#,##0.00)
	FormatPercentage1 NumberFormat = 9  // 0%
	FormatPercentage2 NumberFormat = 10 // 0.00%
	FormatScientific  NumberFormat = 11 // 0.00E+00
	FormatFraction1   NumberFormat = 12 // # ?/?
	FormatFraction2   NumberFormat = 13 // # ??/??
	FormatDate1       NumberFormat = 14 // d/m/yyyy
	FormatDate2       NumberFormat = 15 // d-mmm-yy
	FormatDate3       NumberFormat = 16 // d-mmm
	FormatDate4       NumberFormat = 17 // mmm-yy
	FormatTime1       NumberFormat = 18 // h:mm tt
	FormatTime2       NumberFormat = 19 // h:mm:ss tt
	FormatTime3       NumberFormat = 20 // H:mm
	FormatTime4       NumberFormat = 21 // H:mm:ss
	FormatDateTime    NumberFormat = 22 // m/d/yy h:mm
	FormatAccounting1 NumberFormat = 37 // #,##0 ;(#,##0)
	FormatAccounting2 NumberFormat = 38 // #,##0 ;[Red](#,##0)
	FormatAccounting3 NumberFormat = 39 // #,##0.00;(#,##0.00)
	FormatAccounting4 NumberFormat = 40 // #,##0.00;[Red](#,##0.00)
	FormatTime5       NumberFormat = 45 // mm:ss
	FormatTime6       NumberFormat = 46 // [h]:mm:ss
	FormatTime7       NumberFormat = 47 // mmss.0
	FormatText        NumberFormat = 49 // @
)

// Format is either a built-in format id or a custom format code.
// Custom takes precedence when both are set.
type Format struct {
	BuiltIn *NumberFormat `json:"builtIn,omitempty" yaml:"builtIn,omitempty"`
	Custom  string        `json:"custom,omitempty" yaml:"custom,omitempty"`
}

// Attributes is the optional style bag of a cell. The model copies it
// verbatim and never interprets it; the writer maps it onto styles.
type Attributes struct {
	BorderBottomColor *ARGB        `json:"borderBottomColor,omitempty" yaml:"borderBottomColor,omitempty"`
	BorderBottomStyle BorderStyle  `json:"borderBottomStyle,omitempty" yaml:"borderBottomStyle,omitempty"`
	BorderLeftColor   *ARGB        `json:"borderLeftColor,omitempty" yaml:"borderLeftColor,omitempty"`
	BorderLeftStyle   BorderStyle  `json:"borderLeftStyle,omitempty" yaml:"borderLeftStyle,omitempty"`
	BorderRightColor  *ARGB        `json:"borderRightColor,omitempty" yaml:"borderRightColor,omitempty"`
	BorderRightStyle  BorderStyle  `json:"borderRightStyle,omitempty" yaml:"borderRightStyle,omitempty"`
	BorderTopColor    *ARGB        `json:"borderTopColor,omitempty" yaml:"borderTopColor,omitempty"`
	BorderTopStyle    BorderStyle  `json:"borderTopStyle,omitempty" yaml:"borderTopStyle,omitempty"`
	Color             *ARGB        `json:"color,omitempty" yaml:"color,omitempty"`
	Fill              *ARGB        `json:"fill,omitempty" yaml:"fill,omitempty"`
	FontSize          *float64     `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	Format            *Format      `json:"format,omitempty" yaml:"format,omitempty"`
	Hidden            *bool        `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	HorizontalAlign   string       `json:"horizontalAlign,omitempty" yaml:"horizontalAlign,omitempty"`
	Indent            *int         `json:"indent,omitempty" yaml:"indent,omitempty"`
	Locked            *bool        `json:"locked,omitempty" yaml:"locked,omitempty"`
	ReadingOrder      ReadingOrder `json:"readingOrder,omitempty" yaml:"readingOrder,omitempty"`
	ShrinkToFit       bool         `json:"shrinkToFit,omitempty" yaml:"shrinkToFit,omitempty"`
	TextRotation      *int         `json:"textRotation,omitempty" yaml:"textRotation,omitempty"`
	VerticalAlign     string       `json:"verticalAlign,omitempty" yaml:"verticalAlign,omitempty"`
	WrapText          bool         `json:"wrapText,omitempty" yaml:"wrapText,omitempty"`
}

// IsZero reports whether no attribute is set.
func (a Attributes) IsZero() bool {
	return a.BorderBottomColor == nil && a.BorderBottomStyle == "" &&
		a.BorderLeftColor == nil && a.BorderLeftStyle == "" &&
		a.BorderRightColor == nil && a.BorderRightStyle == "" &&
		a.BorderTopColor == nil && a.BorderTopStyle == "" &&
		a.Color == nil && a.Fill == nil && a.FontSize == nil && a.Format == nil &&
		a.Hidden == nil && a.HorizontalAlign == "" && a.Indent == nil &&
		a.Locked == nil && a.ReadingOrder == ReadingOrderDefault && !a.ShrinkToFit &&
		a.TextRotation == nil && a.VerticalAlign == "" && !a.WrapText
}
