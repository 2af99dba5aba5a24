package config

// Config is the root converter configuration. Every default reproduces the
// plain stdin-to-stdout conversion, so no configuration is ever required.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Converter ConverterConfig `yaml:"converter"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// ConverterConfig holds frequency list conversion settings.
type ConverterConfig struct {
	Encoding     string `yaml:"encoding"      env:"CONVERTER_INPUT_ENCODING" env-default:"utf-8"`
	AlphabetPath string `yaml:"alphabet_path" env:"CONVERTER_ALPHABET_PATH"`
	Lowercase    bool   `yaml:"lowercase"     env:"CONVERTER_LOWERCASE"      env-default:"false"`
	CRLF         bool   `yaml:"crlf"          env:"CONVERTER_CRLF"           env-default:"false"`
	MaxLineSize  int    `yaml:"max_line_size" env:"CONVERTER_MAX_LINE_SIZE"  env-default:"1048576"`
}
