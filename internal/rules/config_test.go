package rules

import (
	"testing"

	"github.com/Sena-ops/impactguard/internal/model"
)

func TestParsePreservaOrdem(t *testing.T) {
	data := []byte(`
patterns:
  zeta:
    impact_level: low
    description: zeta primeiro
  alpha:
    paths:
      - deploy/*.yml
    impact_level: high
    description: alpha depois
  mid:
    content_patterns:
      - kessel
    impact_level: critical
    description: mid por ultimo
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"zeta", "alpha", "mid"}
	if len(cfg.Set.Rules) != len(want) {
		t.Fatalf("esperado %d regras, obtido %d", len(want), len(cfg.Set.Rules))
	}
	for i, name := range want {
		if cfg.Set.Rules[i].Name != name {
			t.Errorf("posição %d: esperado %s, obtido %s", i, name, cfg.Set.Rules[i].Name)
		}
	}
	if cfg.Set.Rules[1].Severity != model.SevHigh {
		t.Errorf("esperado high, obtido %s", cfg.Set.Rules[1].Severity)
	}
}

func TestParseExcludePaths(t *testing.T) {
	data := []byte(`
patterns:
  r:
    impact_level: low
    description: d
exclude_paths:
  - ci/
  - tools/release/
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.ExcludePaths) != 2 || cfg.ExcludePaths[0] != "ci/" {
		t.Errorf("exclude_paths errado: %v", cfg.ExcludePaths)
	}
}

func TestParseExcludePathsPadrao(t *testing.T) {
	data := []byte(`
patterns:
  r:
    impact_level: low
    description: d
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.ExcludePaths) != 1 || cfg.ExcludePaths[0] != ".github/" {
		t.Errorf("esperado padrão .github/, obtido %v", cfg.ExcludePaths)
	}
}

func TestParseFalhaRapido(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"yaml_invalido", "patterns: ["},
		{"sem_patterns", "exclude_paths:\n  - ci/\n"},
		{"severidade_invalida", "patterns:\n  r:\n    impact_level: urgent\n    description: d\n"},
		{"sem_description", "patterns:\n  r:\n    impact_level: low\n"},
		{"regex_invalida", "patterns:\n  r:\n    impact_level: low\n    description: d\n    content_patterns:\n      - '('\n"},
		{"vazio", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Errorf("esperado erro para %s", tt.name)
			}
		})
	}
}
