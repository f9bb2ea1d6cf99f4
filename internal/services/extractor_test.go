package services

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)

	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractFromBytes_DOCX(t *testing.T) {
	docXML := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Senior Backend Engineer with experience in Go and PostgreSQL.</w:t></w:r></w:p>
  </w:body>
</w:document>`

	e := NewExtractorService()
	text, err := e.ExtractFromBytes("resume.docx", buildDocx(t, docXML))
	require.NoError(t, err)

	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Senior Backend Engineer")
	assert.NotContains(t, text, "<w:p>")
}

func TestExtractFromBytes_DOCXPreservesParagraphBreaks(t *testing.T) {
	docXML := `<w:document><w:body><w:p><w:r><w:t>First paragraph</w:t></w:r></w:p><w:p><w:r><w:t>Second paragraph</w:t></w:r></w:p></w:body></w:document>`

	e := NewExtractorService()
	text, err := e.ExtractFromBytes("resume.docx", buildDocx(t, docXML))
	require.NoError(t, err)

	lines := bytes.Split([]byte(text), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "First paragraph")
	assert.Contains(t, string(lines[1]), "Second paragraph")
}

func TestExtractFromBytes_DOCXMissingDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, _ = w.Write([]byte("<styles/>"))
	require.NoError(t, zw.Close())

	e := NewExtractorService()
	_, err = e.ExtractFromBytes("resume.docx", buf.Bytes())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document.xml")
}

func TestExtractFromBytes_UnsupportedFormat(t *testing.T) {
	e := NewExtractorService()
	_, err := e.ExtractFromBytes("resume.txt", []byte("plain text resume"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file format")
}

func TestExtractFromBytes_CorruptPDF(t *testing.T) {
	e := NewExtractorService()
	_, err := e.ExtractFromBytes("resume.pdf", []byte("not a pdf at all"))
	require.Error(t, err)
}

func TestExtractText_MissingFile(t *testing.T) {
	e := NewExtractorService()
	_, err := e.ExtractText(filepath.Join(t.TempDir(), "nope.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestExtractText_ReadsFromDisk(t *testing.T) {
	docXML := `<w:document><w:body><w:p><w:r><w:t>On-disk resume content</w:t></w:r></w:p></w:body></w:document>`
	path := filepath.Join(t.TempDir(), "resume.docx")
	require.NoError(t, os.WriteFile(path, buildDocx(t, docXML), 0644))

	e := NewExtractorService()
	text, err := e.ExtractText(path)
	require.NoError(t, err)
	assert.Contains(t, text, "On-disk resume content")
}

func TestCleanText(t *testing.T) {
	in := "  line one  \n\n\n   line two\n\t\n line three  "
	assert.Equal(t, "line one\nline two\nline three", CleanText(in))
	assert.Empty(t, CleanText("  \n \t \n "))
}
