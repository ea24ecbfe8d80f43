package rules

import (
	"fmt"
	"os"

	"github.com/Sena-ops/impactguard/internal/model"
	"gopkg.in/yaml.v3"
)

// Config é o conjunto de regras mais as exclusões de caminho de uma
// execução.
type Config struct {
	Set          *Set
	ExcludePaths []string
}

// DefaultExcludePaths cobre os scripts da própria automação de CI:
// arquivo aí nunca gera evidência.
var DefaultExcludePaths = []string{".github/"}

type ruleYAML struct {
	Paths           []string `yaml:"paths"`
	ContentPatterns []string `yaml:"content_patterns"`
	ImpactLevel     string   `yaml:"impact_level"`
	Description     string   `yaml:"description"`
	Recommendation  string   `yaml:"recommendation"`
}

// DefaultConfig retorna as regras embutidas com as exclusões padrão.
func DefaultConfig() *Config {
	return &Config{Set: Default(), ExcludePaths: DefaultExcludePaths}
}

// LoadFile lê e compila um arquivo de configuração YAML. Qualquer
// regra mal formada derruba o load inteiro.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ler configuração %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("configuração %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodifica a configuração preservando a ordem de declaração
// das regras — mapas YAML decodificados direto em map[string] perdem
// a ordem, então o mapping é percorrido via yaml.Node.
func Parse(data []byte) (*Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yaml inválido: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("configuração vazia")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("raiz da configuração deve ser um mapping")
	}

	cfg := &Config{ExcludePaths: DefaultExcludePaths}
	var parsed []Rule
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "patterns":
			if value.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("patterns deve ser um mapping")
			}
			for j := 0; j+1 < len(value.Content); j += 2 {
				name := value.Content[j].Value
				r, err := decodeRule(name, value.Content[j+1])
				if err != nil {
					return nil, err
				}
				parsed = append(parsed, r)
			}
		case "exclude_paths":
			var excludes []string
			if err := value.Decode(&excludes); err != nil {
				return nil, fmt.Errorf("exclude_paths inválido: %w", err)
			}
			cfg.ExcludePaths = excludes
		}
	}

	if len(parsed) == 0 {
		return nil, fmt.Errorf("configuração sem regras em patterns")
	}
	set, err := Compile(parsed)
	if err != nil {
		return nil, err
	}
	cfg.Set = set
	return cfg, nil
}

func decodeRule(name string, node *yaml.Node) (Rule, error) {
	var raw ruleYAML
	if err := node.Decode(&raw); err != nil {
		return Rule{}, fmt.Errorf("regra %q: %w", name, err)
	}
	sev, err := model.ParseSeverity(raw.ImpactLevel)
	if err != nil {
		return Rule{}, fmt.Errorf("regra %q: %w", name, err)
	}
	if raw.Description == "" {
		return Rule{}, fmt.Errorf("regra %q: description obrigatória", name)
	}
	return Rule{
		Name:            name,
		Paths:           raw.Paths,
		ContentPatterns: raw.ContentPatterns,
		Severity:        sev,
		Description:     raw.Description,
		Recommendation:  raw.Recommendation,
	}, nil
}
