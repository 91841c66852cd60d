package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/es-debug/prime-table/internal/domain"
)

var errInvalidUTF8 = errors.New("invalid UTF-8")

// Parser reads data files of ascending primes.
//
// A content line holds one or more whitespace separated ASCII decimal integers.
// Every other line is ignored. Values must be strictly ascending across the
// whole file, otherwise the parse fails with KindOrder and returns nothing.
type Parser struct {
	logger      *slog.Logger
	maxLineSize int
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{
		logger:      slog.New(slog.DiscardHandler),
		maxLineSize: defaultMaxLineSize,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse reads the data file at path. All returned errors are *Error.
func (p *Parser) Parse(path string) (domain.PrimeSequence, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.PrimeSequence{}, p.fail(path, NewError(KindNotFound, err))
	}

	if !info.Mode().IsRegular() {
		return domain.PrimeSequence{}, p.fail(path, NewError(KindNotFound, fmt.Errorf("not a regular file: %s", info.Mode().Type())))
	}

	f, err := os.Open(path)
	if err != nil {
		return domain.PrimeSequence{}, p.fail(path, NewError(KindOpen, err))
	}
	defer f.Close()

	seq, err := p.parse(f)
	if err != nil {
		return domain.PrimeSequence{}, p.fail(path, err)
	}

	p.logger.Debug("data file parsed", slog.String("path", path), slog.Int("values", seq.Len()))

	return seq, nil
}

// ParseReader parses an already opened source. Read failures are reported as KindOpen.
func (p *Parser) ParseReader(in io.Reader) (domain.PrimeSequence, error) {
	return p.parse(in)
}

func (p *Parser) fail(path string, err error) error {
	var parseErr *Error
	if errors.As(err, &parseErr) && parseErr.Path == "" {
		parseErr.Path = path
	}

	return err
}

func (p *Parser) parse(in io.Reader) (domain.PrimeSequence, error) {
	parseData := newData()

	scan := bufio.NewScanner(in)
	scan.Buffer(make([]byte, 0, min(bufio.MaxScanTokenSize, p.maxLineSize)), p.maxLineSize)
	scan.Split(splitLines)

	lineNumber := 0

	for scan.Scan() {
		lineNumber++

		text := scan.Bytes()
		if !utf8.Valid(text) {
			return domain.PrimeSequence{}, &Error{Kind: KindOpen, Line: lineNumber, Err: errInvalidUTF8}
		}

		s := string(text)
		if lineNumber == 1 {
			s = strings.TrimPrefix(s, byteOrderMark)
		}

		if err := p.processLine(newLine(s, lineNumber), &parseData); err != nil {
			return domain.PrimeSequence{}, err
		}
	}

	if err := scan.Err(); err != nil {
		kind := KindOpen
		if errors.Is(err, bufio.ErrTooLong) {
			kind = KindUnknown
		}

		return domain.PrimeSequence{}, &Error{Kind: kind, Line: lineNumber + 1, Err: err}
	}

	p.logger.Debug("lines processed",
		slog.Int("lines", lineNumber),
		slog.Int("accepted", parseData.acceptedLines),
		slog.Int("skipped", parseData.skippedLines),
	)

	return domain.NewPrimeSequenceFromBig(parseData.values), nil
}

func (p *Parser) processLine(curLine line, parseData *data) error {
	tokens := curLine.tokens()
	if len(tokens) == 0 {
		return nil
	}

	for _, token := range tokens {
		if !isDecimal(token) {
			parseData.skippedLines++

			return nil
		}
	}

	for _, token := range tokens {
		value, ok := new(big.Int).SetString(token, 10)
		if !ok {
			return &Error{Kind: KindUnknown, Line: curLine.number, Err: fmt.Errorf("convert token %q", token)}
		}

		if !parseData.add(value) {
			return &Error{
				Kind: KindOrder,
				Line: curLine.number,
				Err:  fmt.Errorf("%d does not follow %d", value, parseData.last()),
			}
		}
	}

	parseData.acceptedLines++

	return nil
}
