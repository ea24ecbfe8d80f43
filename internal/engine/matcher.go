package engine

import (
	"fmt"

	"github.com/Sena-ops/impactguard/internal/model"
	"github.com/Sena-ops/impactguard/internal/parser"
	"github.com/Sena-ops/impactguard/internal/rules"
)

// maxDetails limita os exemplos por evidência no relatório.
const maxDetails = 5

type matchKey struct {
	text string
	line int
}

// MatchFile avalia todas as regras contra um arquivo e suas linhas
// adicionadas, na ordem de declaração das regras. Regra com filtro de
// conteúdo que não encontra nada não gera evidência, mesmo com o
// caminho casando; regra só de caminho dispara com detalhes vazios.
func MatchFile(path string, adds []parser.AddedLine, set *rules.Set) []model.Evidence {
	var out []model.Evidence

	for i := range set.Rules {
		rule := &set.Rules[i]
		if !rule.MatchPath(path) {
			continue
		}

		details := []string{}
		if len(rule.Patterns) > 0 {
			details = collectDetails(path, adds, rule)
			if details == nil {
				continue
			}
		}

		out = append(out, model.Evidence{
			Category:       rule.Name,
			Severity:       rule.Severity,
			FilePath:       path,
			Description:    rule.Description,
			Details:        details,
			Recommendation: rule.Recommendation,
		})
	}
	return out
}

// collectDetails aplica os padrões de conteúdo às adições e formata
// os matches, deduplicados por (trecho, linha) e limitados a
// maxDetails, preservando a ordem de descoberta.
func collectDetails(path string, adds []parser.AddedLine, rule *rules.CompiledRule) []string {
	seen := make(map[matchKey]struct{})
	var details []string

	for _, add := range adds {
		for i := range rule.Patterns {
			for _, m := range rule.Patterns[i].FindAll(add.Text) {
				key := matchKey{text: m, line: add.Line}
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				if len(details) < maxDetails {
					details = append(details, fmt.Sprintf("Found `%s` in `%s` at line %d", m, path, add.Line))
				}
			}
		}
	}
	return details
}
