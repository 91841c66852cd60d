package parser

import "math/big"

// data accumulates values across all lines of a single parse call.
type data struct {
	values        []*big.Int
	acceptedLines int
	skippedLines  int
}

func newData() data {
	return data{
		values:        make([]*big.Int, 0),
		acceptedLines: 0,
		skippedLines:  0,
	}
}

// add appends value if it is greater than the last appended one.
func (d *data) add(value *big.Int) bool {
	if n := len(d.values); n > 0 && d.values[n-1].Cmp(value) >= 0 {
		return false
	}

	d.values = append(d.values, value)

	return true
}

func (d *data) last() *big.Int {
	return d.values[len(d.values)-1]
}
