// Package config loads the optional per-project scaffolder settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config file names, checked in this order.
const (
	FileYAML = ".spring-scaffold.yaml"
	FileYML  = ".spring-scaffold.yml"
	FileTOML = ".spring-scaffold.toml"
)

// EnvPrefix prefixes every environment override, e.g. SPRING_SCAFFOLD_BASE_PATH.
const EnvPrefix = "SPRING_SCAFFOLD_"

// Config represents the scaffolder settings. Every field has a usable default.
type Config struct {
	SourceRoot        string `yaml:"source_root" toml:"source_root" validate:"required"`
	FallbackNamespace string `yaml:"fallback_namespace" toml:"fallback_namespace" validate:"required,namespace"`
	TemplateDir       string `yaml:"template_dir" toml:"template_dir" validate:"omitempty,dir"`
	BasePath          string `yaml:"base_path" toml:"base_path" validate:"required,startswith=/"`
	JavaVersion       string `yaml:"java_version" toml:"java_version" validate:"required,numeric"`
	SpringBootVersion string `yaml:"spring_boot_version" toml:"spring_boot_version" validate:"required"`
	JWTSecret         string `yaml:"jwt_secret" toml:"jwt_secret" validate:"omitempty,min=32"` // HS256 needs 256 bits
	Journal           bool   `yaml:"journal" toml:"journal"`
	LogLevel          string `yaml:"log_level" toml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	LogFormat         string `yaml:"log_format" toml:"log_format" validate:"omitempty,oneof=text json"`

	// Path is the file the settings were read from, empty when none was found.
	Path string `yaml:"-" toml:"-"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		SourceRoot:        "src/main/java",
		FallbackNamespace: "com.example",
		BasePath:          "/api/v1",
		JavaVersion:       "17",
		SpringBootVersion: "3.2.0",
		LogLevel:          "info",
		LogFormat:         "text",
	}
}

var namespacePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("namespace", func(fl validator.FieldLevel) bool {
		return namespacePattern.MatchString(fl.Field().String())
	})
	return v
}

// Load reads the settings for dir. Resolution order, lowest to highest: defaults, the
// config file in dir, dir/.env, then SPRING_SCAFFOLD_* variables already in the
// environment. A missing file is not an error.
func Load(dir string) (*Config, error) {
	// Existing variables win over .env entries.
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	cfg := Default()
	if err := cfg.readFile(dir); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(dir string) error {
	for _, name := range []string{FileYAML, FileYML, FileTOML} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		if name == FileTOML {
			_, err = toml.Decode(string(data), c)
		} else {
			err = yaml.Unmarshal(data, c)
		}
		if err != nil {
			return fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		c.Path = path
		return nil
	}
	return nil
}

// applyEnv overrides fields from SPRING_SCAFFOLD_<KEY> variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"SOURCE_ROOT":         &c.SourceRoot,
		"FALLBACK_NAMESPACE":  &c.FallbackNamespace,
		"TEMPLATE_DIR":        &c.TemplateDir,
		"BASE_PATH":           &c.BasePath,
		"JAVA_VERSION":        &c.JavaVersion,
		"SPRING_BOOT_VERSION": &c.SpringBootVersion,
		"JWT_SECRET":          &c.JWTSecret,
		"LOG_LEVEL":           &c.LogLevel,
		"LOG_FORMAT":          &c.LogFormat,
	}
	for key, field := range strs {
		if v, ok := lookup(EnvPrefix + key); ok && strings.TrimSpace(v) != "" {
			*field = strings.TrimSpace(v)
		}
	}

	if v, ok := lookup(EnvPrefix + "JOURNAL"); ok && strings.TrimSpace(v) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid %sJOURNAL %q: %w", EnvPrefix, v, err)
		}
		c.Journal = b
	}
	return nil
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s fails %q", fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
