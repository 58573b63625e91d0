package codegen

import (
	"embed"
	"strings"
	"sync"
	"text/template"
)

//go:embed template/*.tmpl
var templateDir embed.FS

var defaultFuncMap = template.FuncMap{
	"lower": strings.ToLower,
	"upper": strings.ToUpper,
}

var (
	templates     *template.Template
	templatesOnce sync.Once
)

func initTemplates() {
	templatesOnce.Do(func() {
		templates = MustParse(NewTemplate("colgen").ParseFS(templateDir, "template/*.tmpl"))
	})
}

// NewTemplate creates an empty template set with the default functions.
func NewTemplate(name string) *template.Template {
	return template.New(name).Funcs(defaultFuncMap)
}

// MustParse panics if err is non-nil.
func MustParse(t *template.Template, err error) *template.Template {
	if err != nil {
		panic(err)
	}
	return t
}
