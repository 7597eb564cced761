package writer

import (
	"encoding/json"
	"fmt"

	"github.com/ukaji3/xlsxgen-go/pkg/xlsxgen/models"
	"github.com/xuri/excelize/v2"
)

// BorderStyleIDs maps border styles to excelize border style indexes.
var BorderStyleIDs = map[models.BorderStyle]int{
	models.BorderThin:   1,
	models.BorderMedium: 2,
	models.BorderDashed: 3,
	models.BorderDotted: 4,
	models.BorderThick:  5,
	models.BorderDouble: 6,
}

// StyleCache registers each distinct attribute bag once per file.
type StyleCache struct {
	f   *excelize.File
	ids map[string]int
}

// NewStyleCache returns an empty cache bound to f.
func NewStyleCache(f *excelize.File) *StyleCache {
	return &StyleCache{f: f, ids: make(map[string]int)}
}

// StyleID returns the style index for attrs, registering it on first use.
// Empty attributes map to the default style 0.
func (c *StyleCache) StyleID(attrs models.Attributes) (int, error) {
	if attrs.IsZero() {
		return 0, nil
	}
	key, err := json.Marshal(attrs)
	if err != nil {
		return 0, err
	}
	if id, ok := c.ids[string(key)]; ok {
		return id, nil
	}

	id, err := c.f.NewStyle(BuildStyle(attrs))
	if err != nil {
		return 0, fmt.Errorf("register style: %w", err)
	}
	c.ids[string(key)] = id
	return id, nil
}

// Len returns the number of registered styles.
func (c *StyleCache) Len() int { return len(c.ids) }

// BuildStyle converts cell attributes to an excelize style.
func BuildStyle(attrs models.Attributes) *excelize.Style {
	style := &excelize.Style{}

	sides := []struct {
		side  string
		style models.BorderStyle
		color *models.ARGB
	}{
		{"left", attrs.BorderLeftStyle, attrs.BorderLeftColor},
		{"top", attrs.BorderTopStyle, attrs.BorderTopColor},
		{"right", attrs.BorderRightStyle, attrs.BorderRightColor},
		{"bottom", attrs.BorderBottomStyle, attrs.BorderBottomColor},
	}
	for _, s := range sides {
		if s.style == "" && s.color == nil {
			continue
		}
		border := excelize.Border{Type: s.side, Color: "000000", Style: BorderStyleIDs[models.BorderThin]}
		if id, ok := BorderStyleIDs[s.style]; ok {
			border.Style = id
		}
		if s.color != nil {
			border.Color = hexRGB(*s.color)
		}
		style.Border = append(style.Border, border)
	}

	if attrs.Fill != nil {
		style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hexRGB(*attrs.Fill)}}
	}

	if attrs.Color != nil || attrs.FontSize != nil {
		style.Font = &excelize.Font{}
		if attrs.Color != nil {
			style.Font.Color = hexRGB(*attrs.Color)
		}
		if attrs.FontSize != nil {
			style.Font.Size = *attrs.FontSize
		}
	}

	if attrs.HorizontalAlign != "" || attrs.VerticalAlign != "" || attrs.Indent != nil ||
		attrs.ReadingOrder != models.ReadingOrderDefault || attrs.ShrinkToFit ||
		attrs.TextRotation != nil || attrs.WrapText {
		style.Alignment = &excelize.Alignment{
			Horizontal:   attrs.HorizontalAlign,
			Vertical:     attrs.VerticalAlign,
			ReadingOrder: uint64(attrs.ReadingOrder),
			ShrinkToFit:  attrs.ShrinkToFit,
			WrapText:     attrs.WrapText,
		}
		if attrs.Indent != nil {
			style.Alignment.Indent = *attrs.Indent
		}
		if attrs.TextRotation != nil {
			style.Alignment.TextRotation = *attrs.TextRotation
		}
	}

	if attrs.Hidden != nil || attrs.Locked != nil {
		// Cells are locked unless stated otherwise.
		style.Protection = &excelize.Protection{Locked: true}
		if attrs.Hidden != nil {
			style.Protection.Hidden = *attrs.Hidden
		}
		if attrs.Locked != nil {
			style.Protection.Locked = *attrs.Locked
		}
	}

	if f := attrs.Format; f != nil {
		if f.Custom != "" {
			custom := f.Custom
			style.CustomNumFmt = &custom
		} else if f.BuiltIn != nil {
			style.NumFmt = int(*f.BuiltIn)
		}
	}

	return style
}

// hexRGB drops the alpha channel, giving "RRGGBB".
func hexRGB(c models.ARGB) string {
	return fmt.Sprintf("%06X", uint32(c)&0xFFFFFF)
}
