// Package hostadapter implements hostcontract.Host against a real .docx
// file, for batch/CLI use and for tests that need a concrete host instead
// of a fake. This file is the OPC layer: it opens a .docx package and
// classifies its parts (document body, styles, footnotes, headers, media)
// for the paragraph-extraction layer in docxhost.go to consume.
package hostadapter

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/writingtool-org/checkengine/go-docx/pkg/docx/opc"
)

// Package represents an opened .docx with parts classified by type.
type Package struct {
	pkg     *opc.OpcPackage
	docPart opc.Part

	CoreProps *CoreProperties
	AppProps  *AppProperties

	Styles    []byte
	Settings  []byte
	Numbering []byte
	Comments  []byte
	Footnotes []byte
	Endnotes  []byte
	Fonts     []byte

	Theme       []byte
	WebSettings []byte

	Headers [][]byte
	Footers [][]byte

	Media map[string][]byte

	UnknownParts []UnknownPart
}

// CoreProperties holds Dublin Core metadata from core.xml.
type CoreProperties struct {
	Title       string
	Creator     string
	Description string
}

// AppProperties holds extended-property metadata from app.xml.
type AppProperties struct {
	Application string
}

// UnknownPart is a package part with no recognised relationship type.
type UnknownPart struct {
	PartName    string
	ContentType string
	Blob        []byte
}

// OpenPackageReader opens a .docx from an io.ReaderAt.
func OpenPackageReader(r io.ReaderAt, size int64) (*Package, error) {
	pkg, err := opc.Open(r, size, nil)
	if err != nil {
		return nil, fmt.Errorf("hostadapter: open: %w", err)
	}
	return classify(pkg)
}

// OpenPackageBytes opens a .docx from in-memory bytes.
func OpenPackageBytes(data []byte) (*Package, error) {
	pkg, err := opc.OpenBytes(data, nil)
	if err != nil {
		return nil, fmt.Errorf("hostadapter: open bytes: %w", err)
	}
	return classify(pkg)
}

// DocumentBody returns the main document part's raw XML blob.
func (p *Package) DocumentBody() ([]byte, error) {
	return p.docPart.Blob()
}

// SaveWriter writes the package back out as a .docx ZIP archive. Callers
// that rewrote DocumentBody must call ReplaceDocumentBody first.
func (p *Package) SaveWriter(w io.Writer) error {
	return p.pkg.Save(w)
}

// SaveBytes returns the package as a byte slice.
func (p *Package) SaveBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.SaveWriter(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReplaceDocumentBody overwrites the main document part's XML in the
// package; a later SaveWriter or SaveBytes writes the new body out.
func (p *Package) ReplaceDocumentBody(xmlBytes []byte) error {
	writer, ok := p.docPart.(interface{ SetBlob([]byte) })
	if !ok {
		return fmt.Errorf("hostadapter: main document part does not support in-place rewrite")
	}
	writer.SetBlob(xmlBytes)
	return nil
}

func classify(pkg *opc.OpcPackage) (*Package, error) {
	doc := &Package{
		pkg:   pkg,
		Media: make(map[string][]byte),
	}

	for _, rel := range pkg.Rels().All() {
		if rel.IsExternal || rel.TargetPart == nil {
			continue
		}
		switch rel.RelType {
		case opc.RTOfficeDocument:
			doc.docPart = rel.TargetPart
		case opc.RTCoreProperties:
			if b, err := rel.TargetPart.Blob(); err == nil {
				doc.CoreProps = parseCoreProps(b)
			}
		case opc.RTExtendedProperties:
			if b, err := rel.TargetPart.Blob(); err == nil {
				doc.AppProps = parseAppProps(b)
			}
		}
	}

	if doc.docPart == nil {
		return nil, fmt.Errorf("hostadapter: no main document part found")
	}

	classified := make(map[opc.PackURI]bool)
	classified[doc.docPart.PartName()] = true

	if docRels := doc.docPart.Rels(); docRels != nil {
		for _, rel := range docRels.All() {
			if rel.IsExternal || rel.TargetPart == nil {
				continue
			}
			part := rel.TargetPart
			classified[part.PartName()] = true
			blob, err := part.Blob()
			if err != nil {
				return nil, fmt.Errorf("hostadapter: reading part %q: %w", part.PartName(), err)
			}

			switch rel.RelType {
			case opc.RTStyles:
				doc.Styles = blob
			case opc.RTSettings:
				doc.Settings = blob
			case opc.RTNumbering:
				doc.Numbering = blob
			case opc.RTComments:
				doc.Comments = blob
			case opc.RTFootnotes:
				doc.Footnotes = blob
			case opc.RTEndnotes:
				doc.Endnotes = blob
			case opc.RTFontTable:
				doc.Fonts = blob
			case opc.RTTheme:
				doc.Theme = blob
			case opc.RTWebSettings:
				doc.WebSettings = blob
			case opc.RTHeader:
				doc.Headers = append(doc.Headers, blob)
			case opc.RTFooter:
				doc.Footers = append(doc.Footers, blob)
			case opc.RTImage:
				doc.Media[string(part.PartName())] = blob
			default:
				if isMediaContentType(part.ContentType()) {
					doc.Media[string(part.PartName())] = blob
				}
			}
		}
	}

	for _, rel := range pkg.Rels().All() {
		if !rel.IsExternal && rel.TargetPart != nil {
			classified[rel.TargetPart.PartName()] = true
		}
	}

	for _, part := range pkg.Parts() {
		if classified[part.PartName()] {
			continue
		}
		blob, err := part.Blob()
		if err != nil {
			return nil, fmt.Errorf("hostadapter: reading unknown part %q: %w", part.PartName(), err)
		}
		doc.UnknownParts = append(doc.UnknownParts, UnknownPart{
			PartName:    string(part.PartName()),
			ContentType: part.ContentType(),
			Blob:        blob,
		})
	}

	return doc, nil
}

func isMediaContentType(ct string) bool {
	return strings.HasPrefix(ct, "image/")
}

type xmlCoreProperties struct {
	XMLName     xml.Name `xml:"coreProperties"`
	Title       string   `xml:"title"`
	Creator     string   `xml:"creator"`
	Description string   `xml:"description"`
}

func parseCoreProps(blob []byte) *CoreProperties {
	if len(blob) == 0 {
		return nil
	}
	var props xmlCoreProperties
	if err := xml.Unmarshal(blob, &props); err != nil {
		return &CoreProperties{}
	}
	return &CoreProperties{Title: props.Title, Creator: props.Creator, Description: props.Description}
}

type xmlAppProperties struct {
	XMLName     xml.Name `xml:"Properties"`
	Application string   `xml:"Application"`
}

func parseAppProps(blob []byte) *AppProperties {
	if len(blob) == 0 {
		return nil
	}
	var props xmlAppProperties
	if err := xml.Unmarshal(blob, &props); err != nil {
		return &AppProperties{}
	}
	return &AppProperties{Application: props.Application}
}
