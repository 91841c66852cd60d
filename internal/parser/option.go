package parser

import (
	"log/slog"
	"math"
)

// Lines are unbounded unless WithMaxLineSize sets a cap.
const defaultMaxLineSize = math.MaxInt

type Option func(*Parser)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// WithMaxLineSize limits the length of a single line in bytes.
// Longer lines fail the parse with KindUnknown.
func WithMaxLineSize(size int) Option {
	return func(p *Parser) {
		if size > 0 {
			p.maxLineSize = size
		}
	}
}
