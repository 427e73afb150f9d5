package format

import (
	"strings"

	"github.com/rotisserie/eris"
)

// HardWrap re-wraps text so that no line exceeds width characters.
// Existing blank lines are kept as paragraph breaks. A single word
// longer than width is emitted on its own line unbroken.
func HardWrap(text string, width int) string {
	if width < 1 || text == "" {
		return text
	}

	paragraphs := strings.Split(text, "\n\n")
	wrapped := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		wrapped = append(wrapped, wrapParagraph(p, width))
	}
	return strings.Join(wrapped, "\n\n")
}

func wrapParagraph(p string, width int) string {
	words := strings.Fields(p)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	lineLen := 0
	for _, w := range words {
		switch {
		case lineLen == 0:
			b.WriteString(w)
			lineLen = len(w)
		case lineLen+1+len(w) <= width:
			b.WriteByte(' ')
			b.WriteString(w)
			lineLen += 1 + len(w)
		default:
			b.WriteByte('\n')
			b.WriteString(w)
			lineLen = len(w)
		}
	}
	return b.String()
}

// SplitIntoN splits text into exactly n parts whose concatenation
// reproduces the original. Cut points land on whitespace boundaries
// near the ideal even split where possible, never mid-word unless a
// word spans the whole segment.
func SplitIntoN(text string, n int) ([]string, error) {
	if n < 1 {
		return nil, eris.Errorf("format: cannot split into %d parts", n)
	}

	parts := make([]string, 0, n)
	prev := 0
	for k := 1; k < n; k++ {
		ideal := k * len(text) / n
		cut := nearestBreak(text, prev, ideal)
		parts = append(parts, text[prev:cut])
		prev = cut
	}
	parts = append(parts, text[prev:])
	return parts, nil
}

// nearestBreak finds a cut index at or after prev, as close to ideal as
// possible, positioned just after a whitespace rune. Falls back to the
// ideal index when the segment has no usable whitespace.
func nearestBreak(text string, prev, ideal int) int {
	if ideal <= prev {
		return prev
	}
	if ideal >= len(text) {
		return len(text)
	}

	// Scan outward from the ideal cut for the closest whitespace.
	for off := 0; off < len(text); off++ {
		back := ideal - off
		if back > prev && isSpaceAt(text, back-1) {
			return back
		}
		fwd := ideal + off
		if fwd < len(text) && isSpaceAt(text, fwd-1) {
			return fwd
		}
		if back <= prev && fwd >= len(text) {
			break
		}
	}
	return ideal
}

func isSpaceAt(text string, i int) bool {
	return i >= 0 && i < len(text) && (text[i] == ' ' || text[i] == '\t' || text[i] == '\n')
}
