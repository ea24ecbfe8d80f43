package sarif

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/Sena-ops/impactguard/internal/model"
)

type Log struct {
	Version string `json:"version"`
	Schema  string `json:"$schema"`
	Runs    []Run  `json:"runs"`
}

type Run struct {
	Tool    Tool     `json:"tool"`
	Results []Result `json:"results"`
}

type Tool struct {
	Driver Driver `json:"driver"`
}

type Driver struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type Result struct {
	RuleID    string     `json:"ruleId"`
	Message   Message    `json:"message"`
	Level     string     `json:"level"` // error, warning, note
	Locations []Location `json:"locations"`
}

type Message struct {
	Text string `json:"text"`
}

type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           Region           `json:"region"`
}

type ArtifactLocation struct {
	URI string `json:"uri"`
}

type Region struct {
	StartLine int `json:"startLine"`
}

// Render converte o relatório em um log SARIF 2.1.0, uma Result por
// evidência, na ordem do relatório.
func Render(r *model.Report, toolName, toolVersion string) ([]byte, error) {
	results := make([]Result, 0, len(r.Items))
	for _, e := range r.Items {
		fileURI := toURI(e.FilePath)
		if strings.TrimSpace(fileURI) == "" {
			fileURI = "UNKNOWN"
		}

		text := e.Description
		if len(e.Details) > 0 {
			text += ": " + e.Details[0]
		}

		results = append(results, Result{
			RuleID: e.Category,
			Level:  sevToLevel(e.Severity),
			Message: Message{
				Text: strings.TrimSpace(text),
			},
			Locations: []Location{
				{
					PhysicalLocation: PhysicalLocation{
						ArtifactLocation: ArtifactLocation{
							URI: fileURI,
						},
						Region: Region{
							StartLine: startLine(e.Details),
						},
					},
				},
			},
		})
	}

	log := Log{
		Version: "2.1.0",
		// schema RTM reconhecido por GitHub/VSCode
		Schema: "https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json",
		Runs: []Run{
			{
				Tool: Tool{
					Driver: Driver{
						Name:    toolName,
						Version: toolVersion,
					},
				},
				Results: results,
			},
		},
	}

	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal sarif: %w", err)
	}
	return data, nil
}

// número de linha como o matcher formata os detalhes
var detailLine = regexp.MustCompile(`at line (\d+)$`)

// startLine extrai a linha do primeiro detalhe; evidência só de
// caminho fica em 1.
func startLine(details []string) int {
	if len(details) == 0 {
		return 1
	}
	m := detailLine.FindStringSubmatch(details[0])
	if m == nil {
		return 1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 1
	}
	return n
}

func sevToLevel(s model.Severity) string {
	switch s {
	case model.SevCritical, model.SevHigh:
		return "error"
	case model.SevMedium:
		return "warning"
	default:
		return "note"
	}
}

func toURI(p string) string {
	p = strings.TrimSpace(p)
	p = filepath.ToSlash(p)
	for strings.HasPrefix(p, "../") {
		p = strings.TrimPrefix(p, "../")
	}
	return strings.TrimPrefix(p, "./")
}
