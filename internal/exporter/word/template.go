package word

import (
	"archive/zip"
	"fmt"
	"os"
)

// Placeholders replaced in the generated template
const (
	placeholderTitle     = "{{Title}}"
	placeholderHost      = "{{Host}}"
	placeholderDate      = "{{Date}}"
	placeholderEndpoints = "{{TotalEndpoints}}"
	placeholderContent   = "{{Content}}"
)

var templateParts = []struct {
	name    string
	content string
}{
	{"[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`},
	{"_rels/.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`},
	// Required by some parsers
	{"word/_rels/document.xml.rels", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
</Relationships>`},
	{"word/document.xml", `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:rPr><w:b/><w:sz w:val="36"/></w:rPr><w:t>` + placeholderTitle + `</w:t></w:r></w:p>
<w:p><w:r><w:t>Host: ` + placeholderHost + `</w:t></w:r></w:p>
<w:p><w:r><w:t>Date: ` + placeholderDate + `</w:t></w:r></w:p>
<w:p><w:r><w:t>Total Endpoints: ` + placeholderEndpoints + `</w:t></w:r></w:p>
<w:p><w:r><w:rPr><w:rFonts w:ascii="Consolas" w:hAnsi="Consolas"/></w:rPr><w:t xml:space="preserve">` + placeholderContent + `</w:t></w:r></w:p>
</w:body>
</w:document>`},
}

// writeTemplate writes a minimal docx with placeholders to a temp file and returns its path.
// The caller removes the file.
func writeTemplate() (string, error) {
	f, err := os.CreateTemp("", "apidoc2blue-template-*.docx")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	w := zip.NewWriter(f)
	for _, part := range templateParts {
		pw, err := w.Create(part.name)
		if err == nil {
			_, err = pw.Write([]byte(part.content))
		}
		if err != nil {
			w.Close()
			f.Close()
			os.Remove(f.Name())
			return "", fmt.Errorf("failed to write template part %s: %w", part.name, err)
		}
	}

	if err := w.Close(); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to finish template: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	return f.Name(), nil
}
