package render_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/es-debug/prime-table/internal/domain"
	"github.com/es-debug/prime-table/internal/render"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var firstPrimes = []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

func TestHTML(t *testing.T) {
	tt := []struct {
		name   string
		values []int
		want   string
	}{
		{
			name:   "empty",
			values: nil,
			want:   "<table>\n</table>",
		},
		{
			name:   "only values out of range",
			values: []int{1, 2, 2048, 2053},
			want:   "<table>\n</table>",
		},
		{
			name:   "partial row gets colspan",
			values: []int{2, 3, 5, 7, 11, 13},
			want: "<table>\n" +
				`  <tr><td>3</td><td>5</td><td>7</td><td>11</td><td>13</td><td colspan="5"></td></tr>` +
				"\n</table>",
		},
		{
			name:   "gap of one has no colspan",
			values: firstPrimes[:10],
			want: "<table>\n" +
				"  <tr><td>3</td><td>5</td><td>7</td><td>11</td><td>13</td>" +
				"<td>17</td><td>19</td><td>23</td><td>29</td><td></td></tr>" +
				"\n</table>",
		},
		{
			name:   "full row has no padding",
			values: firstPrimes[:11],
			want: "<table>\n" +
				"  <tr><td>3</td><td>5</td><td>7</td><td>11</td><td>13</td>" +
				"<td>17</td><td>19</td><td>23</td><td>29</td><td>31</td></tr>" +
				"\n</table>",
		},
		{
			name:   "second row",
			values: firstPrimes,
			want: "<table>\n" +
				"  <tr><td>3</td><td>5</td><td>7</td><td>11</td><td>13</td>" +
				"<td>17</td><td>19</td><td>23</td><td>29</td><td>31</td></tr>\n" +
				`  <tr><td>37</td><td>41</td><td colspan="8"></td></tr>` +
				"\n</table>",
		},
		{
			name:   "upper bound",
			values: []int{2029, 2039, 2053},
			want: "<table>\n" +
				`  <tr><td>2029</td><td>2039</td><td colspan="8"></td></tr>` +
				"\n</table>",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got := render.HTML(domain.NewPrimeSequence(tc.values), render.DefaultOptions())

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("HTML() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLiteral(t *testing.T) {
	tt := []struct {
		name   string
		values []int
		want   string
	}{
		{
			name:   "empty",
			values: nil,
			want:   "[\n]",
		},
		{
			name:   "one line",
			values: []int{3, 5, 7, 11, 13},
			want:   "[\n  3, 5, 7, 11, 13\n]",
		},
		{
			name:   "two is filtered",
			values: []int{2, 3},
			want:   "[\n  3\n]",
		},
		{
			name:   "line break before every tenth value",
			values: firstPrimes,
			want:   "[\n  3, 5, 7, 11, 13, 17, 19, 23, 29, 31,\n  37, 41\n]",
		},
		{
			name:   "upper bound",
			values: []int{2039, 2053, 2063},
			want:   "[\n  2039\n]",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got := render.Literal(domain.NewPrimeSequence(tc.values), render.DefaultOptions())

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Literal() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCustomOptions(t *testing.T) {
	opts := render.Options{Lower: 10, Upper: 30, Columns: 3}
	seq := domain.NewPrimeSequence(firstPrimes)

	assert.Equal(t, "[\n  11, 13, 17,\n  19, 23, 29\n]", render.Literal(seq, opts))
	assert.Equal(t,
		"<table>\n  <tr><td>11</td><td>13</td><td>17</td></tr>\n  <tr><td>19</td><td>23</td><td>29</td></tr>\n</table>",
		render.HTML(seq, opts),
	)
}

func TestZeroColumnsUseDefault(t *testing.T) {
	seq := domain.NewPrimeSequence(firstPrimes)

	for _, opts := range []render.Options{
		{Lower: 2, Upper: 10},
		{Lower: 2, Upper: 10, Columns: -3},
	} {
		assert.Equal(t, "[\n  3, 5, 7\n]", render.Literal(seq, opts))
		assert.Equal(t,
			"<table>\n  <tr><td>3</td><td>5</td><td>7</td><td colspan=\"7\"></td></tr>\n</table>",
			render.HTML(seq, opts),
		)
	}
}

func TestParseFormat(t *testing.T) {
	tt := []struct {
		input  string
		format render.Format
		ok     bool
	}{
		{input: "html", format: render.FormatHTML, ok: true},
		{input: "py", format: render.FormatLiteral, ok: true},
		{input: "HTML", ok: false},
		{input: "md", ok: false},
		{input: "", ok: false},
	}

	for _, tc := range tt {
		t.Run(tc.input, func(t *testing.T) {
			format, ok := render.ParseFormat(tc.input)

			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.format, format)
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestRender(t *testing.T) {
	seq := domain.NewPrimeSequence([]int{2, 3, 5})

	t.Run("writes html", func(t *testing.T) {
		var out bytes.Buffer

		require.NoError(t, render.Render(&out, render.FormatHTML, seq, render.DefaultOptions()))
		assert.Equal(t, render.HTML(seq, render.DefaultOptions()), out.String())
	})

	t.Run("writes literal", func(t *testing.T) {
		var out bytes.Buffer

		require.NoError(t, render.Render(&out, render.FormatLiteral, seq, render.DefaultOptions()))
		assert.Equal(t, "[\n  3, 5\n]", out.String())
	})

	t.Run("unknown format", func(t *testing.T) {
		err := render.Render(&bytes.Buffer{}, render.Format("md"), seq, render.DefaultOptions())

		var formatErr render.ErrUnknownFormat
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, render.Format("md"), formatErr.Format)
	})

	t.Run("write failure", func(t *testing.T) {
		err := render.Render(failingWriter{}, render.FormatHTML, seq, render.DefaultOptions())

		require.Error(t, err, "write error must be returned")
	})
}
