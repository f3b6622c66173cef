package pitchdeck

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Document is a deck the user picked on the local filesystem
type Document struct {
	Path  string
	Name  string
	Size  int64
	Pages int // 0 when the PDF could not be parsed locally
}

// OpenDocument checks that path names a readable PDF and collects the
// metadata shown before upload
func OpenDocument(path string) (Document, error) {
	if strings.TrimSpace(path) == "" {
		return Document{}, &ValidationError{Message: "Please select a PDF file"}
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return Document{}, &ValidationError{Message: fmt.Sprintf("%s is not a PDF file", filepath.Base(path))}
	}

	info, err := os.Stat(path)
	if err != nil {
		return Document{}, &ValidationError{Message: fmt.Sprintf("cannot read %s: %v", filepath.Base(path), err)}
	}
	if info.IsDir() {
		return Document{}, &ValidationError{Message: fmt.Sprintf("%s is a directory", filepath.Base(path))}
	}

	return Document{
		Path:  path,
		Name:  filepath.Base(path),
		Size:  info.Size(),
		Pages: countPages(path),
	}, nil
}

// countPages is best effort: the server decides whether a deck is usable
func countPages(path string) (pages int) {
	defer func() {
		// the pdf reader panics on some malformed xref tables
		if recover() != nil {
			pages = 0
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()
	return r.NumPage()
}
