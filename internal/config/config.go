package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Config holds all configuration for the application
type Config struct {
	// Discovery settings
	TestPath  string
	SourceExt string
	ExpectExt string

	// Compiler invocation
	Compiler string
	Method   string // Empty means no --method argument is passed

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	TestPath  string
	Compiler  string
	Method    string
	MethodSet bool // Method was given on the command line, possibly empty
	Inspect   bool
	NoColor   bool
	Verbose   bool
}

// fileConfig mirrors the keys accepted in gtr.yaml
type fileConfig struct {
	Compiler  string  `yaml:"compiler"`
	Method    *string `yaml:"method"`
	SourceExt string  `yaml:"source_ext"`
	ExpectExt string  `yaml:"expect_ext"`
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		TestPath:  DefaultTestPath,
		SourceExt: DefaultSourceExt,
		ExpectExt: DefaultExpectExt,
		Compiler:  DefaultCompiler,
		Method:    DefaultMethod,
	}
}

// Load creates a config and layers, in order, gtr.yaml and .env from the
// test path, the process environment, and the given flags.
func Load(flags Flags) (*Config, error) {
	cfg := New()
	cfg.Flags = flags

	root := cfg.GetTestPath()
	if err := cfg.loadFile(filepath.Join(root, ConfigFileName)); err != nil {
		return nil, err
	}
	cfg.loadEnv(filepath.Join(root, EnvFileName))

	// Apply flag overrides
	if flags.Compiler != "" {
		cfg.Compiler = flags.Compiler
	}
	if flags.MethodSet {
		cfg.Method = flags.Method
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile applies settings from a gtr.yaml file; a missing file is skipped
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	log.Debugf("Loaded settings from %s", path)

	if fc.Compiler != "" {
		c.Compiler = fc.Compiler
	}
	if fc.Method != nil {
		c.Method = *fc.Method
	}
	if fc.SourceExt != "" {
		c.SourceExt = fc.SourceExt
	}
	if fc.ExpectExt != "" {
		c.ExpectExt = fc.ExpectExt
	}
	return nil
}

// loadEnv applies GTR_* variables, reading the .env file first if present
func (c *Config) loadEnv(path string) {
	if err := godotenv.Load(path); err == nil {
		log.Debugf("Loaded environment from %s", path)
	}

	if v := os.Getenv(EnvCompiler); v != "" {
		c.Compiler = v
	}
	if v, ok := os.LookupEnv(EnvMethod); ok {
		c.Method = v
	}
}

// Validate checks that the configuration can drive a run
func (c *Config) Validate() error {
	if c.Compiler == "" {
		return errors.New("compiler executable is not set")
	}
	for _, ext := range []string{c.SourceExt, c.ExpectExt} {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("invalid file extension %q: must start with a dot", ext)
		}
	}
	if c.SourceExt == c.ExpectExt {
		return fmt.Errorf("source and expectation extensions must differ, both are %q", c.SourceExt)
	}
	return nil
}

// GetTestPath returns the test path, using flag if provided
func (c *Config) GetTestPath() string {
	if c.Flags.TestPath != "" {
		return c.Flags.TestPath
	}
	return c.TestPath
}

// GetTestRoot returns the absolute directory where discovery starts
func (c *Config) GetTestRoot() string {
	p := c.GetTestPath()
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
