package cmd

import (
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/joho/godotenv"
)

// Environment variables holding the configuration. They are also passed to extensions.
const (
	EnvDelimiter = "CASHLOG_DELIMITER"
	EnvCurrency  = "CASHLOG_CURRENCY"
	EnvStyle     = "CASHLOG_STYLE"
	EnvVerbose   = "CASHLOG_VERBOSE"
)

// Config holds the defaults of the subcommands flags.
type Config struct {
	Delimiter rune   // Input delimiter, 0 to detect it from the header.
	Currency  string // ISO 4217 code used to format amounts in reports.
	Style     string // glamour style used to render markdown in the terminal.
	Verbose   bool
}

// LoadConfig loads the configuration from environment variables.
// If envPath is set, that dotenv file is loaded first, otherwise a '.env' file in the current
// directory is loaded when present. Variables already set in the environment are kept.
func LoadConfig(envPath string) (*Config, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Missing .env file is fine.
		_ = godotenv.Load()
	}

	delimiter, err := parseDelimiter(os.Getenv(EnvDelimiter))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvDelimiter, err)
	}
	verbose, err := parseBoolEnv(EnvVerbose, false)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", EnvVerbose, err)
	}

	return &Config{
		Delimiter: delimiter,
		Currency:  os.Getenv(EnvCurrency),
		Style:     getEnvOrDefault(EnvStyle, "auto"),
		Verbose:   verbose,
	}, nil
}

// Environ returns the configuration as environment variables, in the "key=value" form.
func (c *Config) Environ() []string {
	return []string{
		EnvDelimiter + "=" + formatDelimiter(c.Delimiter),
		EnvCurrency + "=" + c.Currency,
		EnvStyle + "=" + c.Style,
		EnvVerbose + "=" + strconv.FormatBool(c.Verbose),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	return strconv.ParseBool(value)
}

// parseDelimiter reads a delimiter given on the command line or in the environment.
// The empty string means no delimiter, "tab" and "space" name the blank ones.
func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	case "space":
		return ' ', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("delimiter %q must be a single character", s)
	}
	return r, nil
}

// formatDelimiter is the inverse of parseDelimiter.
func formatDelimiter(r rune) string {
	switch r {
	case 0:
		return ""
	case '\t':
		return "tab"
	case ' ':
		return "space"
	}
	return string(r)
}
