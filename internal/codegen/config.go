package codegen

// DefaultHeader marks generated files for go vet and linters.
const DefaultHeader = "// Code generated by colgen. DO NOT EDIT."

// Config configures a generation run.
type Config struct {
	// Target is the output directory. Required.
	Target string

	// Package overrides the package name of the schema file. Optional.
	Package string

	// Header is written at the top of every generated file.
	// Default: DefaultHeader.
	Header string

	// Hooks wrap the generator, outermost first.
	Hooks []Hook
}

func (c *Config) header() string {
	if c.Header != "" {
		return c.Header
	}
	return DefaultHeader
}
