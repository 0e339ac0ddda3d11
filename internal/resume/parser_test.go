package resume

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDOCX assembles a minimal OOXML document with one paragraph per
// input string.
func buildDOCX(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	escaper := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>`)
		body.WriteString(escaper.Replace(p))
		body.WriteString(`</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write(body.Bytes())
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractTextDOCX(t *testing.T) {
	data := buildDOCX(t, "Jane Doe", "jane@example.com", "Go, Kubernetes & Postgres")

	text, err := ExtractText(data, MimeDOCX)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\njane@example.com\nGo, Kubernetes & Postgres\n", text)
}

func TestExtractTextDOCXWithoutDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, _ = f.Write([]byte("<styles/>"))
	require.NoError(t, zw.Close())

	_, err = ExtractText(buf.Bytes(), MimeDOCX)
	assert.Error(t, err)
}

func TestExtractTextUnsupportedType(t *testing.T) {
	_, err := ExtractText([]byte("plain"), "text/plain")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestExtractTextCorruptDOCX(t *testing.T) {
	_, err := ExtractText([]byte("not a zip archive"), MimeDOCX)
	assert.Error(t, err)
}
