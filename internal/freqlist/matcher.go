// Package freqlist converts Russian National Corpus n-gram frequency lists
// ("120 слово", "45 кот.сущ") into CSV. Pure streaming: reader in, CSV out.
package freqlist

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/heartmarshall/ruscorpora-csv/internal/domain"
)

// defaultLetters is the lowercase Cyrillic range а..я (U+0430..U+044F).
// ё lies outside it and is rejected unless a custom alphabet lists it.
const defaultLetters = "а-я"

// errEmptyAlphabet is returned when a custom alphabet has no letters.
var errEmptyAlphabet = errors.New("alphabet has no letters")

// Matcher extracts an NgramRecord from a single frequency list line.
// It holds no mutable state and is safe for concurrent use.
type Matcher struct {
	re        *regexp.Regexp
	lowercase bool
}

// NewMatcher builds a Matcher whose words consist of the letters in
// alphabet. An empty alphabet selects the default а-я class. When lowercase
// is set, every line is lowercased before matching.
func NewMatcher(alphabet string, lowercase bool) (*Matcher, error) {
	class := defaultLetters
	if alphabet != "" {
		var err error
		class, err = letterClass(alphabet)
		if err != nil {
			return nil, err
		}
	}

	word := "[" + class + "]+"
	re, err := regexp.Compile(`^(\d+)\s+(` + word + `)(?:[\s.,]+(` + word + `))?(?:[\s.,]+(` + word + `))?\s*$`)
	if err != nil {
		return nil, fmt.Errorf("compile pattern: %w", err)
	}

	return &Matcher{re: re, lowercase: lowercase}, nil
}

// Match returns the record encoded by line, or domain.ErrNoMatch when the
// line as a whole does not fit the pattern.
func (m *Matcher) Match(line string) (domain.NgramRecord, error) {
	if m.lowercase {
		line = strings.ToLower(line)
	}

	groups := m.re.FindStringSubmatch(line)
	if groups == nil {
		return domain.NgramRecord{}, domain.ErrNoMatch
	}

	return domain.NgramRecord{
		Count: groups[1],
		Word1: groups[2],
		Word2: groups[3],
		Word3: groups[4],
	}, nil
}

// letterClass turns a list of letters into the body of a regexp character
// class. Letters are literal; whitespace is ignored and duplicates dropped.
func letterClass(alphabet string) (string, error) {
	seen := make(map[rune]bool)
	var b strings.Builder
	for _, r := range alphabet {
		if unicode.IsSpace(r) || seen[r] {
			continue
		}
		seen[r] = true
		switch r {
		case '\\', ']', '[', '^', '-':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	if b.Len() == 0 {
		return "", errEmptyAlphabet
	}
	return b.String(), nil
}
