package codegen

import (
	"go/token"
	"go/types"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hupe1980/colstore"
)

// Type is one generated table: the central object handed to templates.
type Type struct {
	*Config

	// Name is the table name from the schema.
	Name string

	// Package is the Go package of the generated file.
	Package string

	// Columns in declaration order.
	Columns []*Column
}

// Column wraps one column declaration with template helpers.
type Column struct {
	// Name is the exported column name.
	Name string

	// Kind is the resolved element kind.
	Kind colstore.Kind

	// Index is the position of the column in the table.
	Index int

	param string
}

// Header returns the file header for generated code.
func (t *Type) Header() string {
	return t.Config.header()
}

// Label returns the lower-case name of the table.
func (t *Type) Label() string {
	return strings.ToLower(t.Name)
}

// TableName returns the generated table struct name.
func (t *Type) TableName() string {
	return t.Name + "Table"
}

// RowName returns the generated row struct name.
func (t *Type) RowName() string {
	return t.Name + "Row"
}

// NewFuncName returns the constructor name.
func (t *Type) NewFuncName() string {
	return "New" + t.Name + "Table"
}

// Receiver returns the receiver variable name for table methods.
func (t *Type) Receiver() string {
	return "t"
}

// Params returns the parameter list of Append, e.g. "x float32, mass float64".
func (t *Type) Params() string {
	parts := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		parts[i] = c.Param() + " " + c.GoType()
	}
	return strings.Join(parts, ", ")
}

// RowArgs returns the Append arguments taken from row variable r.
func (t *Type) RowArgs(r string) string {
	parts := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		parts[i] = r + "." + c.Name
	}
	return strings.Join(parts, ", ")
}

// GoType returns the Go element type of the column.
func (c *Column) GoType() string {
	return c.Kind.GoType()
}

// FieldName returns the name of the column field inside the table struct.
func (c *Column) FieldName() string {
	return "col" + c.Name
}

// Param returns the Append parameter name of the column.
func (c *Column) Param() string {
	if c.param != "" {
		return c.param
	}
	return c.baseParam()
}

// baseParam lower-cases the first letter of the name. Keywords, predeclared
// identifiers and the names the generated method bodies use are suffixed.
func (c *Column) baseParam() string {
	p := lowerFirst(c.Name)
	switch {
	case !token.IsIdentifier(p):
		return "v" + c.Name
	case token.IsKeyword(p), types.Universe.Lookup(p) != nil, p == "t", p == "err":
		return p + "_"
	}
	return p
}

// assignParams gives every column a distinct parameter name. A name already
// taken gets the column index appended.
func assignParams(cols []*Column) {
	taken := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		p := c.baseParam()
		if _, dup := taken[p]; dup {
			p += strconv.Itoa(c.Index)
		}
		for {
			if _, dup := taken[p]; !dup {
				break
			}
			p += "_"
		}
		taken[p] = struct{}{}
		c.param = p
	}
}

func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}
