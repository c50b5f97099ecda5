// Package assist defines the homework assistance contracts: turning
// uploaded files into text and producing AI guidance from a question.
// Both collaborators are optional and failure-tolerant; the homework
// flow degrades to warnings rather than failing once input parses.
package assist

import (
	"context"
	"errors"
)

// Upload is one file attached to a homework submission.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ErrUnsupportedFormat is returned by an Extractor for uploads it
// cannot turn into text.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Extractor turns one upload into plain text.
type Extractor interface {
	Extract(ctx context.Context, upload Upload) (string, error)
}

// Advisor produces study guidance for a homework question and the text
// extracted from its attachments.
type Advisor interface {
	Advise(ctx context.Context, question string, extracts []string) (string, error)
}
