package input

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/ukaji3/xlsxgen-go/pkg/xlsxgen/models"
	"github.com/ukaji3/xlsxgen-go/pkg/xlsxgen/protect"
)

// DateLayout is the calendar-date form accepted by CellDefinition.Date.
// RFC 3339 timestamps are accepted too.
const DateLayout = "2006-01-02"

const workbookLabel = "workbook"

// Options configures Build.
type Options struct {
	// Policy governs malformed cell references. Defaults to PolicyFallback.
	Policy models.PositionPolicy
	// IDs issues sheet IDs. If nil, models.DefaultIDs is used.
	IDs *models.IDCounter
	// Deriver hashes sheet and workbook passwords.
	Deriver protect.Deriver
}

func (o Options) policy() models.PositionPolicy {
	if o.Policy == "" {
		return models.PolicyFallback
	}
	return o.Policy
}

// Build converts def into a workbook. Passwords are hashed concurrently and
// attached as protection descriptors.
func Build(ctx context.Context, def *Definition, opts Options) (*models.Workbook, error) {
	if def == nil || len(def.Sheets) == 0 {
		return nil, ErrEmptyDefinition
	}

	sheets := make([]*models.Sheet, 0, len(def.Sheets))
	for i, sd := range def.Sheets {
		sheet, err := buildSheet(i, sd, opts)
		if err != nil {
			return nil, err
		}
		sheets = append(sheets, sheet)
	}

	passwords := make(map[string]string)
	for i, sd := range def.Sheets {
		if sd.Password != "" {
			passwords[strconv.Itoa(i)] = sd.Password
		}
	}
	if def.Password != "" {
		passwords[workbookLabel] = def.Password
	}
	descriptors, err := opts.Deriver.DeriveAll(ctx, passwords)
	if err != nil {
		return nil, fmt.Errorf("derive protection: %w", err)
	}
	for i, sheet := range sheets {
		sheet.SetProtection(descriptors[strconv.Itoa(i)])
	}

	wb := models.NewWorkbook(sheets[0], def.Options)
	for _, sheet := range sheets[1:] {
		wb.AddSheet(sheet)
	}
	wb.SetProtection(descriptors[workbookLabel])
	return wb, nil
}

func buildSheet(index int, sd SheetDefinition, opts Options) (*models.Sheet, error) {
	if sd.Name == "" {
		return nil, NewDefinitionError(fmt.Sprintf("#%d", index+1), "", fmt.Errorf("missing sheet name"))
	}

	order := index
	if sd.Order != nil {
		order = *sd.Order
	}

	cells := make([]*models.Cell, 0, len(sd.Cells))
	for _, cd := range sd.Cells {
		value, err := cellValue(cd)
		if err != nil {
			return nil, NewDefinitionError(sd.Name, cd.Ref, err)
		}
		pos, _, err := models.ParsePositionWith(cd.Ref, opts.policy())
		if err != nil {
			return nil, NewDefinitionError(sd.Name, cd.Ref, err)
		}
		cells = append(cells, models.NewCell(pos, value, cd.Style))
	}

	return models.NewSheet(sd.Name, cells, &models.SheetOptions{
		Order: order,
		IDs:   opts.IDs,
		Page:  sd.Page,
	}), nil
}

func cellValue(cd CellDefinition) (models.Value, error) {
	set := 0
	var v models.Value
	if cd.Value != nil {
		set++
		v = parseValue(string(*cd.Value))
	}
	if cd.Text != nil {
		set++
		v = models.TextValue(*cd.Text)
	}
	if cd.Number != nil {
		set++
		if math.IsNaN(*cd.Number) || math.IsInf(*cd.Number, 0) {
			return models.Value{}, fmt.Errorf("%w: number %v", ErrInvalidValue, *cd.Number)
		}
		v = models.NumberValue(*cd.Number)
	}
	if cd.Date != "" {
		set++
		t, err := parseDate(cd.Date)
		if err != nil {
			return models.Value{}, err
		}
		v = models.DateValue(t)
	}
	if set != 1 {
		return models.Value{}, fmt.Errorf("%w: %d values given", ErrInvalidValue, set)
	}
	return v, nil
}

// parseDate reads a calendar date as local midnight, or an RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(DateLayout, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q", ErrInvalidValue, s)
	}
	return t, nil
}
