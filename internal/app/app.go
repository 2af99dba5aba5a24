package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ruscorpora-csv/internal/config"
	"github.com/heartmarshall/ruscorpora-csv/internal/freqlist"
)

// Version is set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/ruscorpora-csv/internal/app.Version=1.0.0"
var Version = "dev"

// Run converts the frequency list on stdin to CSV on stdout. Diagnostics go
// to stderr only. A run that matches zero lines still succeeds.
func Run(ctx context.Context, cfg *config.Config, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := NewLogger(stderr, cfg.Log).With(slog.String("run_id", uuid.NewString()))

	opts, err := converterOptions(cfg.Converter)
	if err != nil {
		logger.Error("prepare converter", slog.String("error", err.Error()))
		return err
	}

	conv, err := freqlist.New(opts)
	if err != nil {
		logger.Error("create converter", slog.String("error", err.Error()))
		return fmt.Errorf("create converter: %w", err)
	}

	logger.Debug("starting conversion",
		slog.String("version", Version),
		slog.String("encoding", cfg.Converter.Encoding),
		slog.Bool("custom_alphabet", opts.Alphabet != ""),
	)

	start := time.Now()
	stats, err := conv.Convert(ctx, stdin, stdout)
	if err != nil {
		logger.Error("conversion failed",
			slog.String("error", err.Error()),
			slog.Int("lines_read", stats.TotalLines),
			slog.Int("records_written", stats.Records),
		)
		return fmt.Errorf("convert: %w", err)
	}

	logger.Debug("conversion completed",
		slog.Int("lines_read", stats.TotalLines),
		slog.Int("records_written", stats.Records),
		slog.Int("unigrams", stats.ByOrder[0]),
		slog.Int("bigrams", stats.ByOrder[1]),
		slog.Int("trigrams", stats.ByOrder[2]),
		slog.Duration("duration", time.Since(start)),
	)

	return nil
}

func converterOptions(cfg config.ConverterConfig) (freqlist.Options, error) {
	opts := freqlist.Options{
		Encoding:    cfg.Encoding,
		Lowercase:   cfg.Lowercase,
		CRLF:        cfg.CRLF,
		MaxLineSize: cfg.MaxLineSize,
	}

	if cfg.AlphabetPath != "" {
		alphabet, err := freqlist.LoadAlphabet(cfg.AlphabetPath)
		if err != nil {
			return freqlist.Options{}, fmt.Errorf("load alphabet: %w", err)
		}
		opts.Alphabet = alphabet
	}

	return opts, nil
}
