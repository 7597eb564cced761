package writer

import (
	"fmt"
	"time"

	"github.com/ukaji3/xlsxgen-go/pkg/xlsxgen/models"
	"github.com/xuri/excelize/v2"
)

// DefaultApplication is written to app.xml when no name is given.
const DefaultApplication = "xlsxgen"

// WriteDocProperties writes core and app metadata. Absent sections leave
// the excelize defaults in place. It returns the names of fields excelize
// cannot express.
func WriteDocProperties(f *excelize.File, opts models.WorkbookOptions) ([]string, error) {
	if core := opts.Core; core != nil {
		props := &excelize.DocProperties{
			Creator:        core.Creator,
			LastModifiedBy: core.LastModifiedBy,
		}
		if core.DateCreated != nil {
			props.Created = core.DateCreated.UTC().Format(time.RFC3339)
		}
		if core.DateModified != nil {
			props.Modified = core.DateModified.UTC().Format(time.RFC3339)
		}
		if err := f.SetDocProps(props); err != nil {
			return nil, fmt.Errorf("core properties: %w", err)
		}
	}

	var skipped []string
	if app := opts.App; app != nil {
		props := &excelize.AppProperties{
			Application: app.Name,
			Company:     app.Company,
			AppVersion:  app.Version,
		}
		if props.Application == "" {
			props.Application = DefaultApplication
		}
		if app.DocSecurity != nil {
			props.DocSecurity = *app.DocSecurity
		}
		if app.HyperlinksChanged != nil {
			props.HyperlinksChanged = *app.HyperlinksChanged
		}
		if app.LinksUpToDate != nil {
			props.LinksUpToDate = *app.LinksUpToDate
		}
		if app.ScaleCrop != nil {
			props.ScaleCrop = *app.ScaleCrop
		}
		if err := f.SetAppProps(props); err != nil {
			return nil, fmt.Errorf("app properties: %w", err)
		}
		if app.SharedDoc != nil {
			skipped = append(skipped, "sharedDoc")
		}
	}

	return skipped, nil
}
