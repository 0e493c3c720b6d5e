package pdfinfo

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// ReadTitle extracts the embedded title from a PDF's metadata. A document
// with no title yields ""; a document that cannot be parsed yields an error
// marker string. A broken PDF is data to report, not a reason to stop a
// scan.
func ReadTitle(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Sprintf("[Error: %v]", err)
	}
	defer f.Close()

	info, err := api.PDFInfo(f, filepath.Base(path), nil, false, nil)
	if err != nil {
		return fmt.Sprintf("[Error: %v]", err)
	}
	return info.Title
}
