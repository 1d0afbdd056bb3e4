// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"io"

	"github.com/google/safehtml/template"
)

var htmlTemplate = template.Must(template.New("").Funcs(htmlFuncs).Parse(`
{{- range .Entries}}
<table class="abstat {{.Kind}}">
<caption>{{.Target}}{{with .Categorical}} (success: {{.Success}}){{end}}</caption>
<tr><th>role<th>test<th>statistic<th>p<th>alpha<th>decision
{{- range .Steps}}
<tr class="{{if .Reject}}reject{{else}}accept{{end}}"><td>{{.Role}}<td>{{.Test}}<td>{{float .Statistic}}<td>{{pvalue .P}}<td>{{.Alpha}}<td>{{.Decision}}
{{- range .Warnings}}
<tr class="warning"><td colspan="6">{{.}}
{{- end}}
{{- end}}
</table>
{{- end}}
`))

var htmlFuncs = template.FuncMap{
	"float":  formatFloat,
	"pvalue": formatP,
}

// FormatHTML writes r as a sequence of HTML tables, one for each
// comparison.
func FormatHTML(w io.Writer, r *Report) error {
	return htmlTemplate.Execute(w, r)
}
