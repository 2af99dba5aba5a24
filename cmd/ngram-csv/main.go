// Command ngram-csv converts a Russian National Corpus n-gram frequency list
// read from stdin into CSV written to stdout:
//
//	for i in 1grams-3.txt 2grams-3.txt 3grams-3.txt; do ngram-csv < $i > $i.csv; done
//
// Lines that are not "<count> <word> [<word> [<word>]]" are dropped silently.
// Optional settings come from CONFIG_PATH / ./config.yaml and the
// environment (LOG_LEVEL, CONVERTER_INPUT_ENCODING, ...).
//
// Exit codes: 0 = success, 1 = error. Signals keep their default action.
package main

import (
	"context"
	"log"
	"os"

	"github.com/heartmarshall/ruscorpora-csv/internal/app"
	"github.com/heartmarshall/ruscorpora-csv/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if err := app.Run(context.Background(), cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
