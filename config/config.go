// Package config loads cre2 option profiles.
//
// A profile is read in layers, lowest priority first: built-in defaults, an
// optional YAML file, then CRE2_* environment variables. For example
// CRE2_CASE_SENSITIVE=false overrides case_sensitive from the file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/coregx/cre2"
	"github.com/coregx/cre2/internal/logging"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "CRE2_"

// DefaultMaxMem mirrors the engine's default memory budget.
const DefaultMaxMem = 8 << 20

// Profile is a named set of compile options plus engine logging settings.
type Profile struct {
	Encoding      string `koanf:"encoding"`
	LogErrors     bool   `koanf:"log_errors"`
	LongestMatch  bool   `koanf:"longest_match"`
	Literal       bool   `koanf:"literal"`
	CaseSensitive bool   `koanf:"case_sensitive"`
	DotNL         bool   `koanf:"dot_nl"`
	NeverCapture  bool   `koanf:"never_capture"`
	MaxMem        int64  `koanf:"max_mem"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
}

func defaults() map[string]any {
	return map[string]any{
		"encoding":       "utf8",
		"log_errors":     true,
		"longest_match":  false,
		"literal":        false,
		"case_sensitive": true,
		"dot_nl":         false,
		"never_capture":  false,
		"max_mem":        DefaultMaxMem,
		"log_level":      "error",
		"log_format":     "text",
	}
}

// Load reads a profile. An empty path skips the file layer.
func Load(path string) (*Profile, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	// CRE2_MAX_MEM -> max_mem
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var p Profile
	if err := k.Unmarshal("", &p); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the profile for values the engine cannot take.
func (p *Profile) Validate() error {
	var errs []error
	if _, err := p.encoding(); err != nil {
		errs = append(errs, err)
	}
	if p.MaxMem <= 0 {
		errs = append(errs, fmt.Errorf("max_mem must be positive, got %d", p.MaxMem))
	}
	if _, err := p.level(); err != nil {
		errs = append(errs, err)
	}
	if _, err := p.format(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (p *Profile) encoding() (cre2.Encoding, error) {
	switch strings.ToLower(p.Encoding) {
	case "", "utf8", "utf-8":
		return cre2.EncodingUTF8, nil
	case "latin1", "latin-1", "iso-8859-1":
		return cre2.EncodingLatin1, nil
	default:
		return cre2.EncodingUnknown, fmt.Errorf("unknown encoding %q", p.Encoding)
	}
}

func (p *Profile) level() (slog.Level, error) {
	l, err := logging.ParseLevel(p.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", p.LogLevel, err)
	}
	return l, nil
}

func (p *Profile) format() (logging.Format, error) {
	f, err := logging.ParseFormat(p.LogFormat)
	if err != nil {
		return "", fmt.Errorf("invalid log_format %q: %w", p.LogFormat, err)
	}
	return f, nil
}

// NewOptions allocates a cre2.Options carrying the profile's settings.
// The caller owns the result and must Close it.
func (p *Profile) NewOptions() (*cre2.Options, error) {
	enc, err := p.encoding()
	if err != nil {
		return nil, err
	}

	opts := cre2.NewOptions()
	if err := opts.SetEncoding(enc); err != nil {
		_ = opts.Close()
		return nil, err
	}
	opts.SetLogErrors(p.LogErrors)
	opts.SetLongestMatch(p.LongestMatch)
	opts.SetLiteral(p.Literal)
	opts.SetCaseSensitive(p.CaseSensitive)
	opts.SetDotNL(p.DotNL)
	opts.SetNeverCapture(p.NeverCapture)
	opts.SetMaxMem(p.MaxMem)
	return opts, nil
}

// Logger builds the diagnostics logger the profile describes.
func (p *Profile) Logger() (*slog.Logger, error) {
	level, err := p.level()
	if err != nil {
		return nil, err
	}
	format, err := p.format()
	if err != nil {
		return nil, err
	}
	return logging.New(logging.Options{Format: format, Level: level}), nil
}

// Apply installs the profile's logger as the cre2 diagnostics logger.
func (p *Profile) Apply() error {
	logger, err := p.Logger()
	if err != nil {
		return err
	}
	cre2.SetLogger(logger)
	return nil
}
