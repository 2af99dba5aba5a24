package freqlist

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/heartmarshall/ruscorpora-csv/internal/domain"
)

// DefaultMaxLineSize bounds a single input line. Longer lines are skipped.
const DefaultMaxLineSize = 1024 * 1024

// Options configures a Converter. The zero value converts UTF-8 input with
// the а-я letter class and "\n" record terminators.
type Options struct {
	Encoding    string // utf-8 (default), windows-1251, koi8-r
	Alphabet    string // letters allowed in words; empty means а-я
	Lowercase   bool   // lowercase lines before matching
	CRLF        bool   // terminate records with \r\n
	MaxLineSize int    // 0 means DefaultMaxLineSize
}

// Stats holds conversion statistics for logging.
type Stats struct {
	TotalLines int
	Records    int
	// ByOrder counts emitted records by n-gram order: [0] unigrams,
	// [1] bigrams, [2] trigrams.
	ByOrder [3]int
}

// Converter turns a frequency list into CSV, one line at a time.
type Converter struct {
	matcher *Matcher
	opts    Options
}

// New creates a Converter, validating the encoding and alphabet up front.
func New(opts Options) (*Converter, error) {
	if _, err := decoderFor(opts.Encoding); err != nil {
		return nil, err
	}
	if opts.MaxLineSize <= 0 {
		opts.MaxLineSize = DefaultMaxLineSize
	}

	m, err := NewMatcher(opts.Alphabet, opts.Lowercase)
	if err != nil {
		return nil, fmt.Errorf("build matcher: %w", err)
	}

	return &Converter{matcher: m, opts: opts}, nil
}

// Convert reads r until end of stream and writes one CSV record to w for
// every line that matches. Lines that do not match, including lines over
// the size limit, are skipped. Read and write failures abort the
// conversion; whatever was emitted before the failure has been flushed.
func (c *Converter) Convert(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	var stats Stats

	lines, err := newLineReader(r, c.opts.Encoding, c.opts.MaxLineSize)
	if err != nil {
		return stats, err
	}
	emitter := NewEmitter(w, c.opts.CRLF)

	for {
		if err := ctx.Err(); err != nil {
			_ = emitter.Flush()
			return stats, err
		}

		line, ok, err := lines.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			_ = emitter.Flush()
			return stats, fmt.Errorf("read line %d: %w", stats.TotalLines+1, err)
		}
		stats.TotalLines++
		if !ok {
			continue
		}

		rec, err := c.matcher.Match(line)
		if errors.Is(err, domain.ErrNoMatch) {
			continue
		}

		if err := emitter.Emit(rec); err != nil {
			return stats, err
		}
		stats.Records++
		stats.ByOrder[rec.Order()-1]++
	}

	if err := emitter.Flush(); err != nil {
		return stats, err
	}
	return stats, nil
}
