package assist

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// textExtensions are accepted when the upload carries no usable
// content type.
var textExtensions = map[string]bool{
	".txt": true,
	".md":  true,
	".csv": true,
}

// TextExtractor extracts plain-text uploads as-is. Binary formats
// (images, PDFs) are not supported; submissions carrying them get a
// per-file warning instead of OCR output.
type TextExtractor struct{}

var _ Extractor = (*TextExtractor)(nil)

// Extract returns the upload's content when it is text, or
// ErrUnsupportedFormat otherwise.
func (TextExtractor) Extract(_ context.Context, upload Upload) (string, error) {
	if !isText(upload) {
		return "", fmt.Errorf("%q: %w", upload.Filename, ErrUnsupportedFormat)
	}
	if !utf8.Valid(upload.Data) {
		return "", fmt.Errorf("%q: not valid UTF-8: %w", upload.Filename, ErrUnsupportedFormat)
	}
	return strings.TrimSpace(string(upload.Data)), nil
}

func isText(upload Upload) bool {
	mediaType, _, _ := strings.Cut(upload.ContentType, ";")
	mediaType = strings.TrimSpace(strings.ToLower(mediaType))
	if strings.HasPrefix(mediaType, "text/") {
		return true
	}
	if mediaType == "" || mediaType == "application/octet-stream" {
		return textExtensions[strings.ToLower(filepath.Ext(upload.Filename))]
	}
	return false
}
