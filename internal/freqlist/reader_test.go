package freqlist

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalEncoding(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"", EncodingUTF8, false},
		{"utf-8", EncodingUTF8, false},
		{"UTF8", EncodingUTF8, false},
		{"Windows-1251", EncodingWindows1251, false},
		{"cp1251", EncodingWindows1251, false},
		{"koi8-r", EncodingKOI8R, false},
		{"KOI8R", EncodingKOI8R, false},
		{"iso-8859-5", "", true},
	}

	for _, tt := range tests {
		t.Run("encoding_"+tt.name, func(t *testing.T) {
			got, err := CanonicalEncoding(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			dec, err := decoderFor(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want != EncodingUTF8, dec != nil)
		})
	}
}

type lineResult struct {
	line string
	ok   bool
}

func readAll(t *testing.T, lr *lineReader) []lineResult {
	t.Helper()
	var out []lineResult
	for {
		line, ok, err := lr.next()
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
		out = append(out, lineResult{line, ok})
	}
}

func TestLineReader_StripsTerminators(t *testing.T) {
	lr, err := newLineReader(strings.NewReader("a\nb\r\n\nc"), "", DefaultMaxLineSize)
	require.NoError(t, err)

	assert.Equal(t, []lineResult{{"a", true}, {"b", true}, {"", true}, {"c", true}}, readAll(t, lr))
}

func TestLineReader_DiscardsOverlongLines(t *testing.T) {
	input := "short\n" + strings.Repeat("x", 100) + "\nnext\n" + strings.Repeat("y", 50)
	lr, err := newLineReader(strings.NewReader(input), "", 20)
	require.NoError(t, err)

	assert.Equal(t, []lineResult{
		{"short", true},
		{"", false},
		{"next", true},
		{"", false},
	}, readAll(t, lr))
}

func TestLineReader_EmptyInput(t *testing.T) {
	lr, err := newLineReader(strings.NewReader(""), "", DefaultMaxLineSize)
	require.NoError(t, err)

	_, _, err = lr.next()
	assert.ErrorIs(t, err, io.EOF)
}
