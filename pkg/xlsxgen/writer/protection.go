package writer

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ukaji3/xlsxgen-go/pkg/xlsxgen/protect"
)

const workbookPart = "xl/workbook.xml"

// ErrPartNotFound indicates a package part needed for protection is missing.
var ErrPartNotFound = errors.New("package part not found")

// ProtectionFlags selects what a protected sheet or workbook locks.
type ProtectionFlags struct {
	// Objects locks drawing objects on protected sheets.
	Objects bool
	// Scenarios locks scenarios on protected sheets.
	Scenarios bool
	// LockStructure prevents adding, moving or deleting sheets.
	LockStructure bool
	// LockWindows keeps workbook windows at their size and position.
	LockWindows bool
}

// ProtectionRequest lists the descriptors to embed into a saved package.
// Sheets is keyed by sheet name.
type ProtectionRequest struct {
	Sheets   map[string]*protect.Descriptor
	Workbook *protect.Descriptor
	Flags    ProtectionFlags
}

// Empty reports whether nothing needs protecting.
func (r ProtectionRequest) Empty() bool {
	return len(r.Sheets) == 0 && r.Workbook == nil
}

type sheetProtection struct {
	XMLName       xml.Name `xml:"sheetProtection"`
	AlgorithmName string   `xml:"algorithmName,attr"`
	HashValue     string   `xml:"hashValue,attr"`
	SaltValue     string   `xml:"saltValue,attr"`
	SpinCount     string   `xml:"spinCount,attr"`
	Sheet         int      `xml:"sheet,attr"`
	Objects       int      `xml:"objects,attr,omitempty"`
	Scenarios     int      `xml:"scenarios,attr,omitempty"`
}

type workbookProtection struct {
	XMLName               xml.Name `xml:"workbookProtection"`
	WorkbookAlgorithmName string   `xml:"workbookAlgorithmName,attr"`
	WorkbookHashValue     string   `xml:"workbookHashValue,attr"`
	WorkbookSaltValue     string   `xml:"workbookSaltValue,attr"`
	WorkbookSpinCount     string   `xml:"workbookSpinCount,attr"`
	LockStructure         int      `xml:"lockStructure,attr,omitempty"`
	LockWindows           int      `xml:"lockWindows,attr,omitempty"`
}

// ApplyProtection rewrites the package in src, inserting a sheetProtection
// element into each requested worksheet and a workbookProtection element
// into the workbook part. The descriptors are written verbatim.
func ApplyProtection(src []byte, req ProtectionRequest) ([]byte, error) {
	if req.Empty() {
		return src, nil
	}

	zr, err := zip.NewReader(bytes.NewReader(src), int64(len(src)))
	if err != nil {
		return nil, err
	}

	sheetParts, err := sheetPartMap(zr)
	if err != nil {
		return nil, err
	}

	patches := make(map[string][]byte)
	for name, desc := range req.Sheets {
		part, ok := sheetParts[name]
		if !ok {
			return nil, fmt.Errorf("%w: worksheet for sheet %q", ErrPartNotFound, name)
		}
		elem, err := xml.Marshal(sheetProtection{
			AlgorithmName: desc.AlgorithmName,
			HashValue:     desc.HashValue,
			SaltValue:     desc.SaltValue,
			SpinCount:     desc.SpinCount,
			Sheet:         1,
			Objects:       boolAttr(req.Flags.Objects),
			Scenarios:     boolAttr(req.Flags.Scenarios),
		})
		if err != nil {
			return nil, err
		}
		patches[part] = elem
	}

	var bookElem []byte
	if desc := req.Workbook; desc != nil {
		bookElem, err = xml.Marshal(workbookProtection{
			WorkbookAlgorithmName: desc.AlgorithmName,
			WorkbookHashValue:     desc.HashValue,
			WorkbookSaltValue:     desc.SaltValue,
			WorkbookSpinCount:     desc.SpinCount,
			LockStructure:         boolAttr(req.Flags.LockStructure),
			LockWindows:           boolAttr(req.Flags.LockWindows),
		})
		if err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range zr.File {
		data, err := readZipEntry(f)
		if err != nil {
			return nil, err
		}

		switch {
		case patches[f.Name] != nil:
			// CT_Worksheet places sheetProtection directly after sheetData.
			if data, err = insertElement(data, patches[f.Name], afterAnchor("</sheetData>"), afterAnchor("<sheetData/>")); err != nil {
				return nil, fmt.Errorf("%s: %w", f.Name, err)
			}
		case f.Name == workbookPart && bookElem != nil:
			// CT_Workbook places workbookProtection before bookViews.
			if data, err = insertElement(data, bookElem, beforeAnchor("<bookViews"), beforeAnchor("<sheets")); err != nil {
				return nil, fmt.Errorf("%s: %w", f.Name, err)
			}
		}

		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.Name,
			Method:   f.Method,
			Modified: f.Modified,
		})
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(data); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

type anchor struct {
	text  string
	after bool
}

func afterAnchor(text string) anchor  { return anchor{text: text, after: true} }
func beforeAnchor(text string) anchor { return anchor{text: text} }

// insertElement inserts elem at the first anchor found in doc.
func insertElement(doc, elem []byte, anchors ...anchor) ([]byte, error) {
	for _, a := range anchors {
		idx := bytes.Index(doc, []byte(a.text))
		if idx < 0 {
			continue
		}
		if a.after {
			idx += len(a.text)
		}
		out := make([]byte, 0, len(doc)+len(elem))
		out = append(out, doc[:idx]...)
		out = append(out, elem...)
		return append(out, doc[idx:]...), nil
	}
	return nil, fmt.Errorf("%w: no insertion point for %s", ErrPartNotFound, firstTag(elem))
}

func firstTag(elem []byte) string {
	s := string(elem)
	if end := strings.IndexAny(s, " >"); end > 0 {
		return s[:end] + ">"
	}
	return s
}

func boolAttr(b bool) int {
	if b {
		return 1
	}
	return 0
}

// sheetPartMap returns a mapping of sheet names to their worksheet part paths.
func sheetPartMap(r *zip.Reader) (map[string]string, error) {
	workbookXML, err := readZipFile(r, workbookPart)
	if err != nil {
		return nil, err
	}
	if workbookXML == nil {
		return nil, fmt.Errorf("%w: %s", ErrPartNotFound, workbookPart)
	}

	wbRelsXML, err := readZipFile(r, "xl/_rels/workbook.xml.rels")
	if err != nil {
		return nil, err
	}
	if wbRelsXML == nil {
		return nil, fmt.Errorf("%w: workbook relationships", ErrPartNotFound)
	}

	return parseWorkbookRels(wbRelsXML, parseWorkbookSheets(workbookXML)), nil
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			return readZipEntry(f)
		}
	}
	return nil, nil
}

func readZipEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func resolveRelativePath(target, baseDir string) string {
	if strings.HasPrefix(target, "../") {
		clean := target
		for strings.HasPrefix(clean, "../") {
			clean = strings.TrimPrefix(clean, "../")
		}
		return "xl/" + clean
	}
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(target, "/")
	}
	return baseDir + "/" + target
}

func parseWorkbookSheets(data []byte) map[string]string {
	result := make(map[string]string) // rId -> sheet name
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "sheet" {
			var name, rID string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "name":
					name = attr.Value
				case "id":
					rID = attr.Value
				}
			}
			if name != "" && rID != "" {
				result[rID] = name
			}
		}
	}

	return result
}

func parseWorkbookRels(data []byte, sheetsInfo map[string]string) map[string]string {
	result := make(map[string]string) // sheet name -> part path
	decoder := xml.NewDecoder(bytes.NewReader(data))

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}
		if se, ok := token.(xml.StartElement); ok && se.Name.Local == "Relationship" {
			var rID, target string
			for _, attr := range se.Attr {
				switch attr.Name.Local {
				case "Id":
					rID = attr.Value
				case "Target":
					target = attr.Value
				}
			}
			if sheetName, ok := sheetsInfo[rID]; ok && strings.Contains(strings.ToLower(target), "worksheet") {
				result[sheetName] = resolveRelativePath(target, "xl")
			}
		}
	}

	return result
}
