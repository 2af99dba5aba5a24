package freqlist

import (
	"fmt"
	"os"
	"strings"
)

// LoadAlphabet reads the letters that make up a word from an alphabet file,
// e.g. "абвгдеёжзийклмнопрстуфхцчшщъыьэюя". Whitespace (including the
// trailing newline) is dropped.
//
// Every character is a literal letter: "а-яё" means the four characters
// а, -, я and ё, not a range. List each letter explicitly; alphabet files
// written for regexp character classes must be expanded first.
func LoadAlphabet(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read alphabet: %w", err)
	}

	alphabet := strings.Join(strings.Fields(string(data)), "")
	if alphabet == "" {
		return "", fmt.Errorf("alphabet %s: %w", path, errEmptyAlphabet)
	}
	return alphabet, nil
}
