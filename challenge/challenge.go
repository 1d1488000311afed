package challenge

import (
	"fmt"
	"os"
	"strings"
)

// Challenge is one loaded puzzle input plus the debug flags in effect.
type Challenge struct {
	// Path is the file the input was read from.
	Path string
	// Input is the file's text with CRLF normalized to LF.
	Input string

	debug map[string]string
}

// Option represents a functional option for configuring Load.
type Option func(*Challenge)

// WithDebugFlags installs the flags parsed from spec (see ParseFlags).
func WithDebugFlags(spec string) Option {
	return func(c *Challenge) { c.debug = ParseFlags(spec) }
}

// Load reads the input file at path. Errors carry the path as context
// and wrap the underlying I/O error for errors.Is/As inspection.
func Load(path string, opts ...Option) (*Challenge, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("challenge: read input %s: %w", path, err)
	}
	c := &Challenge{
		Path:  path,
		Input: strings.ReplaceAll(string(raw), "\r\n", "\n"),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// LoadAll loads every path in order, failing on the first unreadable
// file. Options apply to each loaded challenge.
func LoadAll(paths []string, opts ...Option) ([]*Challenge, error) {
	out := make([]*Challenge, 0, len(paths))
	for _, p := range paths {
		c, err := Load(p, opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, nil
}

// Lines splits the input into lines, dropping a single trailing newline
// so a conventionally-terminated file does not yield a phantom line.
func (c *Challenge) Lines() []string {
	if c.Input == "" {
		return nil
	}

	return strings.Split(strings.TrimSuffix(c.Input, "\n"), "\n")
}

// Debug reports whether the named debug flag is set.
func (c *Challenge) Debug(name string) bool {
	_, ok := c.debug[name]

	return ok
}

// DebugValue returns the value of a name=value debug flag. Flags set
// without a value report ok=true with an empty string.
func (c *Challenge) DebugValue(name string) (value string, ok bool) {
	value, ok = c.debug[name]

	return value, ok
}

// ParseFlags parses a comma-separated debug flag list. Each entry is a
// bare name or name=value; empty entries and surrounding whitespace are
// ignored. A later duplicate overrides an earlier one.
func ParseFlags(spec string) map[string]string {
	flags := make(map[string]string)
	for _, entry := range strings.Split(spec, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, value, _ := strings.Cut(entry, "=")
		flags[name] = value
	}

	return flags
}
