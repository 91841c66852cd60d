package parser

import (
	"bytes"
	"strings"
	"unicode"
)

const byteOrderMark = "\uFEFF"

type line struct {
	text   string
	number int
}

func newLine(text string, number int) line {
	return line{
		text:   text,
		number: number,
	}
}

func (l line) tokens() []string {
	return strings.FieldsFunc(l.text, isSpace)
}

// isSpace also treats the ASCII file, group, record and unit separators as whitespace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func isDecimal(token string) bool {
	if token == "" {
		return false
	}

	for i := range len(token) {
		if token[i] < '0' || token[i] > '9' {
			return false
		}
	}

	return true
}

// splitLines is a bufio.SplitFunc that ends a line at "\n", "\r\n" or a lone "\r".
func splitLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}

		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}

			return i + 1, data[:i], nil
		}

		if atEOF {
			return i + 1, data[:i], nil
		}

		// "\r" at the end of the buffer, need one more byte to see if "\n" follows.
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}

	return 0, nil, nil
}
