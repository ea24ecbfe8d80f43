package report

import (
	"fmt"
	"strings"

	"github.com/Sena-ops/impactguard/internal/model"
)

// Marker identifica o comentário gerado, para a automação achar e
// atualizar o comentário existente no PR.
const Marker = "<!-- impactguard-check -->"

var emoji = map[model.Severity]string{
	model.SevCritical: "🔴",
	model.SevHigh:     "🟠",
	model.SevMedium:   "🟡",
	model.SevLow:      "🟢",
	model.SevNone:     "⚪",
}

// ordem de exibição dos grupos de findings
var displayOrder = []model.Severity{model.SevCritical, model.SevHigh, model.SevMedium, model.SevLow}

// Markdown formata o relatório como comentário de PR em markdown.
// Severidade geral NONE produz a forma curta.
func Markdown(r *model.Report) string {
	var b strings.Builder

	b.WriteString(Marker + "\n")
	b.WriteString("## 🏛️ Deployment Impact Assessment\n\n")
	fmt.Fprintf(&b, "**Overall Impact:** %s **%s**\n\n", emoji[r.Overall], r.Overall.Label())

	if r.Overall == model.SevNone {
		b.WriteString("✅ No deployment-specific impacts detected in this PR.\n\n")
		b.WriteString("<details>\n<summary>What we checked</summary>\n\n")
		b.WriteString("This PR was automatically scanned for:\n")
		b.WriteString("- Database migrations\n")
		b.WriteString("- Deployment configuration changes\n")
		b.WriteString("- Kessel integration changes\n")
		b.WriteString("- AWS service integrations (S3, RDS, ElastiCache)\n")
		b.WriteString("- Kafka topic changes\n")
		b.WriteString("- Secrets management changes\n")
		b.WriteString("- External dependencies\n")
		b.WriteString("</details>")
		return b.String()
	}

	if r.Summary.TotalItems > 0 {
		b.WriteString("### 📊 Summary\n\n")
		fmt.Fprintf(&b, "- **Total Issues:** %d\n", r.Summary.TotalItems)
		if r.Summary.Critical > 0 {
			fmt.Fprintf(&b, "- 🔴 Critical: %d\n", r.Summary.Critical)
		}
		if r.Summary.High > 0 {
			fmt.Fprintf(&b, "- 🟠 High: %d\n", r.Summary.High)
		}
		if r.Summary.Medium > 0 {
			fmt.Fprintf(&b, "- 🟡 Medium: %d\n", r.Summary.Medium)
		}
		if r.Summary.Low > 0 {
			fmt.Fprintf(&b, "- 🟢 Low: %d\n", r.Summary.Low)
		}
		b.WriteString("\n")
	}

	b.WriteString("### 🔍 Detailed Findings\n\n")
	grouped := r.ItemsBySeverity()
	for _, level := range displayOrder {
		items := grouped[level]
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(&b, "#### %s %s Impact\n\n", emoji[level], level.Label())
		for _, item := range items {
			fmt.Fprintf(&b, "**%s**\n", item.Description)
			fmt.Fprintf(&b, "- File: `%s`\n", item.FilePath)
			fmt.Fprintf(&b, "- Category: `%s`\n", item.Category)
			if len(item.Details) > 0 {
				b.WriteString("- Details:\n")
				for _, d := range item.Details {
					fmt.Fprintf(&b, "  - %s\n", d)
				}
			}
			if item.Recommendation != "" {
				fmt.Fprintf(&b, "- ⚠️ **Recommendation:** %s\n", item.Recommendation)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("### ✅ Required Actions\n\n")
	b.WriteString("- [ ] Review all findings above\n")
	b.WriteString("- [ ] Verify target environment compatibility for all detected changes\n")
	b.WriteString("- [ ] Update deployment documentation if needed\n")
	b.WriteString("- [ ] Coordinate the deployment timeline with the platform team\n\n")
	b.WriteString("---\n")
	b.WriteString("*This assessment was automatically generated. Please review carefully and consult the platform team for critical/high impact changes.*")

	return b.String()
}
