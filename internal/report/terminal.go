package report

import (
	"fmt"
	"strings"

	"github.com/Sena-ops/impactguard/internal/model"
	"github.com/fatih/color"
)

var sevColor = map[model.Severity]*color.Color{
	model.SevCritical: color.New(color.FgRed, color.Bold),
	model.SevHigh:     color.New(color.FgRed),
	model.SevMedium:   color.New(color.FgYellow),
	model.SevLow:      color.New(color.FgGreen),
	model.SevNone:     color.New(color.FgWhite),
}

// Terminal formata o relatório para saída direta no terminal, com as
// severidades coloridas.
func Terminal(r *model.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Overall impact: %s\n", sevColor[r.Overall].Sprint(r.Overall.Label()))
	fmt.Fprintf(&b, "Changed files: %d\n", len(r.ChangedFiles))

	if len(r.Items) == 0 {
		b.WriteString("No deployment impacts detected.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Findings: %d\n", r.Summary.TotalItems)
	for _, item := range r.Items {
		fmt.Fprintf(&b, "- [%s] %s (%s)\n",
			sevColor[item.Severity].Sprint(item.Severity.Label()), item.Description, item.FilePath)
		for _, d := range item.Details {
			fmt.Fprintf(&b, "    • %s\n", d)
		}
	}
	return b.String()
}
