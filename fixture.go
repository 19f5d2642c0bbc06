// Package docxfixture emits the minimal word-processing document used as a
// test fixture: a ZIP package holding a content-types manifest, the root
// relationships part and a three-paragraph document body.
package docxfixture

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Archive entry names of the three package parts.
const (
	ContentTypesPart  = "[Content_Types].xml"
	RelationshipsPart = "_rels/.rels"
	DocumentPart      = "word/document.xml"
)

// DefaultPath is where gen_fixture writes the fixture, relative to the
// repository root.
const DefaultPath = "tests/fixtures/simple.docx"

const contentTypesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const relationshipsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p>
      <w:r>
        <w:t>Hello, World!</w:t>
      </w:r>
    </w:p>
    <w:p>
      <w:pPr>
        <w:pStyle w:val="Heading1"/>
      </w:pPr>
      <w:r>
        <w:rPr>
          <w:b/>
        </w:rPr>
        <w:t>This is a heading</w:t>
      </w:r>
    </w:p>
    <w:p>
      <w:r>
        <w:t>Normal paragraph with </w:t>
      </w:r>
      <w:r>
        <w:rPr>
          <w:b/>
          <w:i/>
        </w:rPr>
        <w:t>bold italic</w:t>
      </w:r>
      <w:r>
        <w:t> text.</w:t>
      </w:r>
    </w:p>
  </w:body>
</w:document>`

// parts lists the archive entries in write order. The order is fixed so the
// emitted archive is byte-for-byte identical across runs. The content-type
// override, the relationship target and the document entry name must all keep
// pointing at the same part; nothing validates that at write time.
var parts = []struct {
	name    string
	content string
}{
	{ContentTypesPart, contentTypesXML},
	{RelationshipsPart, relationshipsXML},
	{DocumentPart, documentXML},
}

// WriteTo streams the fixture archive to w as deflate-compressed entries.
func WriteTo(w io.Writer) error {
	zw := zip.NewWriter(w)
	for _, p := range parts {
		fw, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("creating entry %s: %w", p.name, err)
		}
		if _, err := fw.Write([]byte(p.content)); err != nil {
			return fmt.Errorf("writing entry %s: %w", p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("closing archive: %w", err)
	}
	return nil
}

// Create writes the fixture archive to path, creating missing parent
// directories. An existing file at path is overwritten.
func Create(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteTo(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
