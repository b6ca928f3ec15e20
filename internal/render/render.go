// Package render maps view-model snapshots to markup fragments. Every
// function is pure: same snapshot in, same fragment out, no DOM handle
// and no network. Fragments are assigned wholesale into their container
// by the web shell; there is no incremental diffing.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

var funcs = template.FuncMap{
	"price": func(v float64) string { return fmt.Sprintf("$%.2f", v) },
	"date":  shortDate,
	"upper": strings.ToUpper,
}

// shortDate reduces an ISO timestamp to its date part. Anything that is
// not a timestamp passes through untouched.
func shortDate(s string) string {
	if i := strings.IndexByte(s, 'T'); i > 0 {
		return s[:i]
	}
	return s
}

func mustParse(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).Parse(text))
}

func execute(t *template.Template, data interface{}) template.HTML {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		// Templates are static and data is plain structs; a failure
		// here is a programming error.
		panic(err)
	}
	return template.HTML(buf.String())
}
