// Package config loads the styled CLI configuration file.
//
// The file is YAML:
//
//	key: app
//	nonce: r4nd0m
//	theme:
//	  primary: hotpink
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/pthm/styled"
)

// ErrInvalid is wrapped by validation failures.
var ErrInvalid = errors.New("invalid configuration")

// Config is the CLI configuration.
type Config struct {
	Key   string         `yaml:"key" validate:"omitempty,cachekey"`
	Nonce string         `yaml:"nonce" validate:"omitempty,printascii"`
	Theme map[string]any `yaml:"theme"`
}

// ParseError reports a file that could not be read or decoded.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	keyPattern  = regexp.MustCompile(`^[a-z-]+$`)
	yamlLineRex = regexp.MustCompile(`line (\d+)`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("cachekey", func(fl validator.FieldLevel) bool {
			return keyPattern.MatchString(fl.Field().String())
		})
		validateInst = v
	})
	return validateInst
}

// Load reads, decodes and validates the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return Parse(path, data)
}

// Parse decodes and validates data. path is used in errors only.
func Parse(path string, data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Path: path, Line: extractLine(err), Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validatorInstance().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed %q", ErrInvalid, verrs[0].Field(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// ContextOptions returns render context options for c. A nil config
// yields the defaults.
func (c *Config) ContextOptions() styled.ContextOptions {
	if c == nil {
		return styled.ContextOptions{}
	}
	return styled.ContextOptions{Key: c.Key, Nonce: c.Nonce}
}

// ThemeValue returns the configured theme as a styled.Theme.
func (c *Config) ThemeValue() styled.Theme {
	if c == nil || c.Theme == nil {
		return styled.Theme{}
	}
	return styled.Theme(c.Theme)
}

func extractLine(err error) int {
	matches := yamlLineRex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, err := fmt.Sscanf(matches[1], "%d", &line); err != nil {
		return 0
	}
	return line
}
