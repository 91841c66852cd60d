// Package render formats a prime sequence as an HTML table or as an array literal.
//
// Both formats keep only values strictly between Options.Lower and Options.Upper
// and lay them out Options.Columns per row. The layout is byte-exact: downstream
// tooling diffs the output.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/es-debug/prime-table/internal/domain"
)

type Format string

const (
	FormatHTML    Format = "html"
	FormatLiteral Format = "py"
)

type ErrUnknownFormat struct {
	Format Format
}

func (e ErrUnknownFormat) Error() string {
	return fmt.Sprintf("unknown format %q", string(e.Format))
}

func ParseFormat(s string) (Format, bool) {
	switch f := Format(s); f {
	case FormatHTML, FormatLiteral:
		return f, true
	default:
		return "", false
	}
}

type Options struct {
	Lower   int
	Upper   int
	Columns int
}

func DefaultOptions() Options {
	return Options{
		Lower:   2,
		Upper:   2048,
		Columns: 10,
	}
}

// columns falls back to the default row width when Columns is not positive.
func (o Options) columns() int {
	if o.Columns < 1 {
		return DefaultOptions().Columns
	}

	return o.Columns
}

func Render(w io.Writer, format Format, seq domain.PrimeSequence, opts Options) error {
	var text string

	switch format {
	case FormatHTML:
		text = HTML(seq, opts)
	case FormatLiteral:
		text = Literal(seq, opts)
	default:
		return ErrUnknownFormat{Format: format}
	}

	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("write %s output: %w", format, err)
	}

	return nil
}

// HTML renders the table without a trailing newline.
func HTML(seq domain.PrimeSequence, opts Options) string {
	var b strings.Builder

	b.WriteString("<table>")

	columns := opts.columns()
	values := seq.Between(opts.Lower, opts.Upper)

	for start := 0; start < len(values); start += columns {
		row := values[start:min(start+columns, len(values))]

		b.WriteString("\n  <tr>")

		for _, v := range row {
			b.WriteString("<td>")
			b.WriteString(strconv.Itoa(v))
			b.WriteString("</td>")
		}

		if gap := columns - len(row); gap > 0 {
			b.WriteString("<td")

			if gap > 1 {
				fmt.Fprintf(&b, ` colspan="%d"`, gap)
			}

			b.WriteString("></td>")
		}

		b.WriteString("</tr>")
	}

	b.WriteString("\n</table>")

	return b.String()
}

// Literal renders the array literal without a trailing newline.
func Literal(seq domain.PrimeSequence, opts Options) string {
	var b strings.Builder

	columns := opts.columns()

	b.WriteString("[")

	for i, v := range seq.Between(opts.Lower, opts.Upper) {
		if i > 0 {
			b.WriteString(",")
		}

		if i%columns == 0 {
			b.WriteString("\n  ")
		} else {
			b.WriteString(" ")
		}

		b.WriteString(strconv.Itoa(v))
	}

	b.WriteString("\n]")

	return b.String()
}
