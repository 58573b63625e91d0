package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hupe1980/colstore"
	"gopkg.in/yaml.v3"
)

// ErrInvalidSchema is returned for schema files that fail validation.
var ErrInvalidSchema = errors.New("invalid schema")

// reservedNames are the methods of every generated table.
var reservedNames = map[string]struct{}{
	"Append":    {},
	"AppendRow": {},
	"Cap":       {},
	"Close":     {},
	"Len":       {},
	"Reserve":   {},
	"Row":       {},
	"SizeBytes": {},
	"Width":     {},
}

// File is a parsed schema file.
type File struct {
	Package string     `yaml:"package" validate:"required,pkgname"`
	Tables  []TableDef `yaml:"tables" validate:"required,min=1,dive"`
}

// TableDef declares one generated table.
type TableDef struct {
	Name    string      `yaml:"name" validate:"required,exported"`
	Columns []ColumnDef `yaml:"columns" validate:"required,min=1,dive"`
}

// ColumnDef declares one column of a table.
type ColumnDef struct {
	Name string `yaml:"name" validate:"required,exported"`
	Type string `yaml:"type" validate:"required"`
}

var schemaValidate *validator.Validate

func init() {
	schemaValidate = validator.New(validator.WithRequiredStructEnabled())
	_ = schemaValidate.RegisterValidation("exported", validateExported)
	_ = schemaValidate.RegisterValidation("pkgname", validatePkgName)
}

// validateExported accepts exported Go identifiers.
func validateExported(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return token.IsIdentifier(s) && token.IsExported(s)
}

// validatePkgName accepts lower-case Go identifiers.
func validatePkgName(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return token.IsIdentifier(s) && s == strings.ToLower(s) && s != "_"
}

// ParseFile reads and validates the schema file at path.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("colgen: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("colgen: %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes and validates a schema document. Unknown keys are errors.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks struct tags, name uniqueness and column types.
// Non-primitive column types fail with colstore.ErrNotPrimitive.
func (f *File) Validate() error {
	if err := schemaValidate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("%w: %s", ErrInvalidSchema, describe(verrs))
		}
		return fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	tables := make(map[string]struct{}, len(f.Tables))
	for _, t := range f.Tables {
		// Tables share a file when their lower-case names match.
		key := strings.ToLower(t.Name)
		if _, dup := tables[key]; dup {
			return fmt.Errorf("%w: duplicate table %q", ErrInvalidSchema, t.Name)
		}
		tables[key] = struct{}{}

		cols := make(map[string]struct{}, len(t.Columns))
		for _, c := range t.Columns {
			if _, reserved := reservedNames[c.Name]; reserved {
				return fmt.Errorf("%w: table %s: column name %q clashes with a table method", ErrInvalidSchema, t.Name, c.Name)
			}
			if _, dup := cols[c.Name]; dup {
				return fmt.Errorf("table %s: %w: %q", t.Name, colstore.ErrDuplicateColumn, c.Name)
			}
			cols[c.Name] = struct{}{}

			if _, err := colstore.ParseKind(c.Type); err != nil {
				return fmt.Errorf("table %s: column %s: %w", t.Name, c.Name, err)
			}
		}
	}
	return nil
}

func describe(verrs validator.ValidationErrors) string {
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		ns := fe.Namespace()
		if _, rest, ok := strings.Cut(ns, "."); ok {
			ns = rest
		}
		msgs[i] = fmt.Sprintf("%s: failed %q", ns, fe.Tag())
	}
	return strings.Join(msgs, "; ")
}
