package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/flosch/pongo2/v6"
)

// DefaultTextTemplate renders a report as plain text.
const DefaultTextTemplate = `{% autoescape off %}{% for row in rows %}> {{ row.input }}
{% if row.error %}  error: {{ row.error }}
{% else %}{% if row.tokens %}  tokens: {{ row.tokens }}
{% endif %}{% if row.output %}  {{ action }}: {{ row.output }}
{% endif %}{% if row.linear %}  k = {{ row.k }}, b = {{ row.b }}
{% endif %}{% if row.value %}  value: {{ row.value }}
{% endif %}{% if row.samples %}  samples: {{ row.samples }}
{% endif %}{% if row.dump %}{{ row.dump }}
{% endif %}{% endif %}{% endfor %}{% if failed %}{{ failed }} of {{ total }} failed
{% endif %}{% endautoescape %}`

// LoadTemplate compiles the text template at path, or the default template
// when path is empty.
func LoadTemplate(path string) (*pongo2.Template, error) {
	if path == "" {
		return pongo2.FromString(DefaultTextTemplate)
	}
	tpl, err := pongo2.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", path, err)
	}
	return tpl, nil
}

// WriteText renders the report through tpl.
func WriteText(w io.Writer, tpl *pongo2.Template, r Report) error {
	return tpl.ExecuteWriter(pongo2.Context{
		"action": r.Config.Action,
		"rows":   textRows(r.Results),
		"failed": r.Failed,
		"total":  len(r.Results),
	}, w)
}

func textRows(results []Result) []pongo2.Context {
	rows := make([]pongo2.Context, len(results))
	for i, res := range results {
		row := pongo2.Context{
			"input":  res.Input,
			"error":  res.Error,
			"tokens": strings.Join(res.Tokens, " "),
			"output": res.Output,
			"linear": res.Coeff != "",
			"k":      res.Coeff,
			"b":      res.Offset,
			"dump":   res.Dump,
			"nodes":  res.Nodes,
			"depth":  res.Depth,
		}
		if res.Value != nil {
			row["value"] = formatFloat(*res.Value)
		}
		if len(res.Samples) > 0 {
			parts := make([]string, len(res.Samples))
			for j, p := range res.Samples {
				y := "undefined"
				if p.Y != nil {
					y = formatFloat(*p.Y)
				}
				parts[j] = fmt.Sprintf("(%s, %s)", formatFloat(p.X), y)
			}
			row["samples"] = strings.Join(parts, " ")
		}
		rows[i] = row
	}
	return rows
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// WriteJSON writes the report as JSON.
func WriteJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// latexEscape escapes characters that are special in LaTeX text mode.
func latexEscape(s string) string {
	return strings.NewReplacer(
		`\`, `\textbackslash{}`,
		"_", `\_`,
		"^", `\^{}`,
		"#", `\#`,
		"%", `\%`,
		"&", `\&`,
		"$", `\$`,
		"{", `\{`,
		"}", `\}`,
	).Replace(s)
}

// WriteLatex writes a compilable LaTeX document listing every result.
func WriteLatex(w io.Writer, r Report) {
	fmt.Fprintln(w, `\documentclass{article}`)
	fmt.Fprintln(w, `\usepackage{amsmath}`)
	fmt.Fprintln(w, `\usepackage{geometry}`)
	fmt.Fprintln(w, `\geometry{margin=1in}`)
	fmt.Fprintf(w, "\\title{Results --- \\texttt{%s}}\n", latexEscape(r.Config.Action))
	fmt.Fprintln(w, `\date{\today}`)
	fmt.Fprintln(w, `\begin{document}`)
	fmt.Fprintln(w, `\maketitle`)
	fmt.Fprintln(w)

	for i, res := range r.Results {
		fmt.Fprintf(w, "\\subsection*{\\#%d: \\texttt{%s}}\n", i+1, latexEscape(res.Input))
		if res.Err != nil {
			fmt.Fprintf(w, "\\noindent Error: \\texttt{%s}\n\n", latexEscape(res.Error))
			continue
		}
		if res.OutputLaTeX != "" {
			fmt.Fprintln(w, `\[`)
			fmt.Fprintf(w, "  %s\n", res.OutputLaTeX)
			fmt.Fprintln(w, `\]`)
		}
		if res.Value != nil {
			fmt.Fprintf(w, "\\noindent Value: $%s$\n\n", formatFloat(*res.Value))
		}
	}

	fmt.Fprintln(w, `\end{document}`)
}
