package splice

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMissingAnchor marks a document whose splice markers are absent or out
// of order. Callers must leave the document untouched when they see it.
var ErrMissingAnchor = errors.New("splice anchor")

// Replace substitutes the span between the first occurrence of startAnchor
// and the first occurrence of endAnchor with fragment. The result is
// exactly the prefix through the end of startAnchor, a newline, fragment, a
// newline, then the suffix beginning at endAnchor. Both anchors survive,
// which is what makes repeat runs find them again.
//
// Anchor location is plain substring search. Nesting, repeats past the
// first occurrence, and markup structure are deliberately invisible here.
func Replace(document, startAnchor, endAnchor, fragment string) (string, error) {
	start := strings.Index(document, startAnchor)
	if start == -1 {
		return "", fmt.Errorf("%w: start marker %q not found", ErrMissingAnchor, startAnchor)
	}
	end := strings.Index(document, endAnchor)
	if end == -1 {
		return "", fmt.Errorf("%w: end marker %q not found", ErrMissingAnchor, endAnchor)
	}
	if start >= end {
		return "", fmt.Errorf("%w: start marker (offset %d) does not precede end marker (offset %d)", ErrMissingAnchor, start, end)
	}

	var sb strings.Builder
	sb.Grow(start + len(startAnchor) + len(fragment) + len(document) - end + 2)
	sb.WriteString(document[:start+len(startAnchor)])
	sb.WriteByte('\n')
	sb.WriteString(fragment)
	sb.WriteByte('\n')
	sb.WriteString(document[end:])
	return sb.String(), nil
}
