// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package config implements reading and writing
// of the sciops configuration file.
//
// The configuration is a tab-delimited file (TSV)
// with a parameter and its value on each row.
package config

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/js-arias/sciops/calcerr"
	"github.com/js-arias/sciops/physconst"
)

// Param is a keyword to identify
// a parameter of the configuration file.
type Param string

// Valid parameters.
const (
	// Notebook is the path of the lab notebook file.
	Notebook Param = "notebook"

	// DefaultBody is the celestial body preset
	// used when a command accepts a body
	// and none is given.
	DefaultBody Param = "default_body"

	// Color enables styled output.
	Color Param = "color"
)

// ParseParam returns the parameter of a key,
// ignoring case and surrounding blanks.
func ParseParam(key string) Param {
	return Param(strings.ToLower(strings.TrimSpace(key)))
}

// Params returns the valid parameters
// in the order used in the configuration file.
func Params() []Param {
	return []Param{Notebook, DefaultBody, Color}
}

// EnvPath is the environment variable
// used to override the configuration file path.
const EnvPath = "SCIOPS_CONFIG"

// Config is the sciops configuration.
type Config struct {
	name string // file name

	notebook string
	body     string
	color    bool
}

// New creates a configuration with default values
// that will be saved on the given file.
func New(name string) *Config {
	return &Config{
		name:     name,
		notebook: filepath.Join(filepath.Dir(name), "lab-notebook.md"),
		color:    true,
	}
}

// DefaultPath returns the path of the configuration file.
// It uses the SCIOPS_CONFIG environment variable if defined,
// otherwise the file "config.tab"
// in the "sciops" folder of the user configuration directory.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("unable to find configuration directory: %v", err)
	}
	return filepath.Join(dir, "sciops", "config.tab"), nil
}

// Load reads the configuration file
// at the default path.
// As in Read,
// a configuration is returned along with the errors
// of a damaged file.
func Load() (*Config, error) {
	name, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Read(name)
}

var header = []string{
	"parameter",
	"value",
}

// Read reads a configuration file.
// If the file does not exist,
// it returns a configuration with default values.
//
// Rows with an invalid parameter or value are skipped
// and reported in the returned error,
// together with a configuration
// built from the valid rows,
// so a damaged file can be repaired
// by setting and writing the configuration.
//
// The TSV must contain the following fields:
//
//   - parameter, the name of the parameter
//   - value, the value of the parameter
//
// Here is an example file:
//
//	# sciops configuration
//	parameter	value
//	notebook	/home/user/lab-notebook.md
//	default_body	mars
//	color	true
func Read(name string) (*Config, error) {
	f, err := os.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return New(name), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg, err := read(f, name)
	if err != nil {
		return cfg, fmt.Errorf("on file %q: %w", name, err)
	}
	return cfg, nil
}

func read(r io.Reader, name string) (*Config, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	cfg := New(name)
	head, err := tsv.Read()
	if errors.Is(err, io.EOF) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return cfg, calcerr.Validationf("expecting field %q", h)
		}
	}

	var errs []error
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			errs = append(errs, fmt.Errorf("on row %d: %v", ln, err))
			break
		}

		f := "parameter"
		p := ParseParam(row[fields[f]])

		f = "value"
		if err := cfg.Set(p, row[fields[f]]); err != nil {
			errs = append(errs, fmt.Errorf("on row %d, field %q: %w", ln, f, err))
		}
	}
	return cfg, errors.Join(errs...)
}

// Name returns the file name of the configuration.
func (c *Config) Name() string {
	return c.name
}

// NotebookPath returns the path of the lab notebook.
func (c *Config) NotebookPath() string {
	return c.notebook
}

// Body returns the default body preset.
// It returns an empty string if no default is defined.
func (c *Config) Body() string {
	return c.body
}

// Color returns true if styled output is enabled.
func (c *Config) Color() bool {
	return c.color
}

// Value returns the value of a parameter
// as stored in the configuration file.
func (c *Config) Value(p Param) string {
	switch p {
	case Notebook:
		return c.notebook
	case DefaultBody:
		return c.body
	case Color:
		return strconv.FormatBool(c.color)
	}
	return ""
}

// Set sets the value of a parameter.
// The parameter name is case insensitive.
func (c *Config) Set(p Param, value string) error {
	p = ParseParam(string(p))
	value = strings.TrimSpace(value)
	switch p {
	case Notebook:
		if value == "" {
			return calcerr.Validationf("empty notebook path")
		}
		c.notebook = value
	case DefaultBody:
		v := strings.ToLower(value)
		if v == "none" {
			v = ""
		}
		if v != "" {
			if _, err := physconst.GetBody(v); err != nil {
				return err
			}
		}
		c.body = v
	case Color:
		b, err := parseBool(value)
		if err != nil {
			return err
		}
		c.color = b
	default:
		return calcerr.NotFoundf("unknown config key %q", p).WithHint("use: notebook, default_body, color")
	}
	return nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "on":
		return true, nil
	case "0", "false", "no", "off":
		return false, nil
	}
	return false, calcerr.Validationf("invalid color value %q", s).WithHint("use one of: true/false, yes/no, on/off, 1/0")
}

// Write writes the configuration into its file.
// The data is written into a temporary file
// that replaces the configuration file
// only after a successful write.
func (c *Config) Write() (err error) {
	dir := filepath.Dir(c.name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, ".config-*.tab")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if err := c.write(f); err != nil {
		f.Close()
		return fmt.Errorf("on file %q: %v", c.name, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, c.name)
}

func (c *Config) write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# sciops configuration\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}
	for _, p := range Params() {
		row := []string{
			string(p),
			c.Value(p),
		}
		if err := tsv.Write(row); err != nil {
			return err
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}
