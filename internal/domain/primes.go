package domain

import "math/big"

// PrimeSequence is a strictly ascending list of non-negative integers read from
// a data file. Values are not bounded by the machine word size. The sequence is
// never modified after construction; accessors hand out copies.
type PrimeSequence struct {
	values []*big.Int
}

func NewPrimeSequence(values []int) PrimeSequence {
	result := make([]*big.Int, 0, len(values))
	for _, v := range values {
		result = append(result, big.NewInt(int64(v)))
	}

	return PrimeSequence{
		values: result,
	}
}

func NewPrimeSequenceFromBig(values []*big.Int) PrimeSequence {
	return PrimeSequence{
		values: cloneAll(values),
	}
}

func (s PrimeSequence) Len() int {
	return len(s.values)
}

func (s PrimeSequence) At(i int) *big.Int {
	return new(big.Int).Set(s.values[i])
}

// Values returns a copy of the sequence.
func (s PrimeSequence) Values() []*big.Int {
	return cloneAll(s.values)
}

// Between returns the values v with lower < v < upper, in order.
func (s PrimeSequence) Between(lower, upper int) []int {
	lo := big.NewInt(int64(lower))
	up := big.NewInt(int64(upper))
	result := make([]int, 0, len(s.values))

	for _, v := range s.values {
		if v.Cmp(lo) <= 0 {
			continue
		}

		if v.Cmp(up) >= 0 {
			break
		}

		result = append(result, int(v.Int64()))
	}

	return result
}

func cloneAll(values []*big.Int) []*big.Int {
	result := make([]*big.Int, 0, len(values))
	for _, v := range values {
		result = append(result, new(big.Int).Set(v))
	}

	return result
}
