package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/ruscorpora-csv/internal/domain"
	"github.com/heartmarshall/ruscorpora-csv/internal/freqlist"
)

// Canonical values of converter.encoding after Validate.
const (
	EncodingUTF8        = freqlist.EncodingUTF8
	EncodingWindows1251 = freqlist.EncodingWindows1251
	EncodingKOI8R       = freqlist.EncodingKOI8R
)

// Validate checks the loaded configuration and normalizes log.format and
// converter.encoding (aliases such as cp1251 become windows-1251). Load
// calls it automatically.
func (c *Config) Validate() error {
	var errs []domain.FieldError

	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, domain.FieldError{
			Field:   "log.format",
			Message: fmt.Sprintf("must be text or json (got %q)", c.Log.Format),
		})
	}

	if enc, err := freqlist.CanonicalEncoding(c.Converter.Encoding); err != nil {
		errs = append(errs, domain.FieldError{
			Field:   "converter.encoding",
			Message: err.Error(),
		})
	} else {
		c.Converter.Encoding = enc
	}

	if c.Converter.MaxLineSize <= 0 {
		errs = append(errs, domain.FieldError{
			Field:   "converter.max_line_size",
			Message: fmt.Sprintf("must be > 0 (got %d)", c.Converter.MaxLineSize),
		})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
