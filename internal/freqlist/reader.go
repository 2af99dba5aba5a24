package freqlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Canonical input encoding names.
const (
	EncodingUTF8        = "utf-8"
	EncodingWindows1251 = "windows-1251"
	EncodingKOI8R       = "koi8-r"
)

const readerBufSize = 64 * 1024

// CanonicalEncoding maps an encoding name or alias (case-insensitive) to
// its canonical form. An empty name means UTF-8.
func CanonicalEncoding(name string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return EncodingUTF8, nil
	case "windows-1251", "cp1251":
		return EncodingWindows1251, nil
	case "koi8-r", "koi8r":
		return EncodingKOI8R, nil
	default:
		return "", fmt.Errorf("unsupported input encoding %q", name)
	}
}

// decoderFor returns the decoder converting the named input encoding into
// UTF-8, or nil when the input is already UTF-8.
func decoderFor(name string) (*encoding.Decoder, error) {
	enc, err := CanonicalEncoding(name)
	if err != nil {
		return nil, err
	}
	switch enc {
	case EncodingWindows1251:
		return charmap.Windows1251.NewDecoder(), nil
	case EncodingKOI8R:
		return charmap.KOI8R.NewDecoder(), nil
	default:
		return nil, nil
	}
}

// lineReader yields input lines without their terminators (\n, \r\n).
// Lines longer than max bytes are consumed in full but their content is
// dropped, so one junk line never stops the conversion.
type lineReader struct {
	r   *bufio.Reader
	max int
	buf []byte
}

// newLineReader wraps r, decoding it to UTF-8 first when enc names a
// single-byte Cyrillic code page.
func newLineReader(r io.Reader, enc string, maxLineSize int) (*lineReader, error) {
	dec, err := decoderFor(enc)
	if err != nil {
		return nil, err
	}
	if dec != nil {
		r = transform.NewReader(r, dec)
	}

	return &lineReader{
		r:   bufio.NewReaderSize(r, min(readerBufSize, maxLineSize)),
		max: maxLineSize,
	}, nil
}

// next returns the next line. ok is false when the line exceeded the size
// limit and was discarded. err is io.EOF at end of input; any other error
// is a read failure.
func (lr *lineReader) next() (line string, ok bool, err error) {
	lr.buf = lr.buf[:0]
	started, overflow := false, false

	for {
		chunk, isPrefix, err := lr.r.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) && started {
				break
			}
			return "", false, err
		}
		started = true

		if !overflow {
			if len(lr.buf)+len(chunk) > lr.max {
				overflow = true
				lr.buf = lr.buf[:0]
			} else {
				lr.buf = append(lr.buf, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}

	if overflow {
		return "", false, nil
	}
	return string(lr.buf), true, nil
}
