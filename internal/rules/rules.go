package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Sena-ops/impactguard/internal/model"
	"github.com/gobwas/glob"
)

// Rule é uma regra de avaliação de impacto como declarada na
// configuração. Sem Paths, casa com qualquer arquivo; sem
// ContentPatterns, dispara só pelo caminho.
type Rule struct {
	Name            string
	Paths           []string
	ContentPatterns []string
	Severity        model.Severity
	Description     string
	Recommendation  string
}

// ContentPattern é um padrão de conteúdo compilado. NotFollowedBy
// emula o lookahead negativo de literal que o RE2 não suporta: o
// match é descartado quando o texto logo após ele começa pelo literal.
type ContentPattern struct {
	Regexp        *regexp.Regexp
	NotFollowedBy string
}

// CompiledRule é a Rule com globs e regexes prontos. RE2 compila no
// load; regra mal formada nunca chega à análise.
type CompiledRule struct {
	Rule
	Globs    []glob.Glob
	Patterns []ContentPattern
}

// Set é a lista ordenada de regras compiladas. A ordem de declaração
// determina a ordem das evidências no relatório.
type Set struct {
	Rules []CompiledRule
}

// lookahead negativo de literal no fim do padrão, ex.: https://(?!github\.com)
var negLookahead = regexp.MustCompile(`^(.*)\(\?\!((?:[^)\\]|\\.)*)\)$`)

// Compile valida e compila uma lista de regras em um Set.
func Compile(rs []Rule) (*Set, error) {
	set := &Set{Rules: make([]CompiledRule, 0, len(rs))}
	for _, r := range rs {
		cr := CompiledRule{Rule: r}
		for _, p := range r.Paths {
			g, err := glob.Compile(p, '/')
			if err != nil {
				return nil, fmt.Errorf("regra %q: glob %q inválido: %w", r.Name, p, err)
			}
			cr.Globs = append(cr.Globs, g)
		}
		for _, p := range r.ContentPatterns {
			cp, err := compileContentPattern(p)
			if err != nil {
				return nil, fmt.Errorf("regra %q: padrão %q inválido: %w", r.Name, p, err)
			}
			cr.Patterns = append(cr.Patterns, cp)
		}
		set.Rules = append(set.Rules, cr)
	}
	return set, nil
}

func compileContentPattern(pattern string) (ContentPattern, error) {
	var notFollowedBy string
	if m := negLookahead.FindStringSubmatch(pattern); m != nil {
		pattern = m[1]
		notFollowedBy = unescapeLiteral(m[2])
		if notFollowedBy == "" {
			return ContentPattern{}, fmt.Errorf("lookahead negativo vazio")
		}
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return ContentPattern{}, err
	}
	return ContentPattern{Regexp: re, NotFollowedBy: notFollowedBy}, nil
}

// unescapeLiteral reduz um literal regex escapado ("github\.com") ao
// texto puro usado na comparação de prefixo.
func unescapeLiteral(s string) string {
	var b strings.Builder
	escaped := false
	for _, r := range s {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// MatchPath informa se o caminho casa com os globs da regra. Regra
// sem Paths casa com qualquer caminho.
func (r *CompiledRule) MatchPath(path string) bool {
	if len(r.Globs) == 0 {
		return true
	}
	for _, g := range r.Globs {
		if g.Match(path) {
			return true
		}
	}
	return false
}

// FindAll retorna os trechos do texto que casam com o padrão,
// descartando os vetados pelo lookahead.
func (p *ContentPattern) FindAll(text string) []string {
	locs := p.Regexp.FindAllStringIndex(text, -1)
	if locs == nil {
		return nil
	}
	var out []string
	for _, loc := range locs {
		if p.NotFollowedBy != "" {
			rest := text[loc[1]:]
			if len(rest) >= len(p.NotFollowedBy) &&
				strings.EqualFold(rest[:len(p.NotFollowedBy)], p.NotFollowedBy) {
				continue
			}
		}
		out = append(out, text[loc[0]:loc[1]])
	}
	return out
}
