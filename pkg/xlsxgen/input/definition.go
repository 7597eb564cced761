// Package input decodes declarative workbook definitions into the document
// model.
package input

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/ukaji3/xlsxgen-go/pkg/xlsxgen/models"
	"gopkg.in/yaml.v3"
)

// Definition describes a whole workbook.
type Definition struct {
	Options  *models.WorkbookOptions `json:"options,omitempty" yaml:"options,omitempty"`
	Password string                  `json:"password,omitempty" yaml:"password,omitempty"`
	Sheets   []SheetDefinition       `json:"sheets" yaml:"sheets"`
}

// SheetDefinition describes one sheet. Order defaults to the sheet's index.
type SheetDefinition struct {
	Name     string           `json:"name" yaml:"name"`
	Order    *int             `json:"order,omitempty" yaml:"order,omitempty"`
	Password string           `json:"password,omitempty" yaml:"password,omitempty"`
	Page     *models.Page     `json:"page,omitempty" yaml:"page,omitempty"`
	Cells    []CellDefinition `json:"cells,omitempty" yaml:"cells,omitempty"`
}

// CellDefinition describes one cell. Exactly one of Value, Text, Number
// and Date must be set.
type CellDefinition struct {
	Ref string `json:"ref" yaml:"ref"`
	// Value is sniffed: numeric literals become numbers, anything else text.
	Value  *Scalar            `json:"value,omitempty" yaml:"value,omitempty"`
	Text   *string            `json:"text,omitempty" yaml:"text,omitempty"`
	Number *float64           `json:"number,omitempty" yaml:"number,omitempty"`
	Date   string             `json:"date,omitempty" yaml:"date,omitempty"`
	Style  *models.Attributes `json:"style,omitempty" yaml:"style,omitempty"`
}

// Scalar is the raw text of a YAML or JSON scalar, whatever its type.
type Scalar string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: expected a scalar at line %d", ErrInvalidValue, node.Line)
	}
	*s = Scalar(node.Value)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = Scalar(str)
		return nil
	}
	if len(data) > 0 && (data[0] == '{' || data[0] == '[') {
		return fmt.Errorf("%w: expected a scalar", ErrInvalidValue)
	}
	*s = Scalar(data)
	return nil
}

// parseValue converts a sniffed scalar to a cell value.
func parseValue(s string) models.Value {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return models.NumberValue(float64(i))
	}
	// Try float, rejecting the Inf and NaN spellings
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return models.NumberValue(f)
	}
	// Return as string
	return models.TextValue(s)
}

// Decode reads a definition from r using c.
func Decode(r io.Reader, c Codec) (*Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var def Definition
	if err := c.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.ContentType(), err)
	}
	return &def, nil
}

// LoadFile reads a .yaml, .yml or .json definition.
func LoadFile(path string) (*Definition, error) {
	c, err := CodecFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f, c)
}
