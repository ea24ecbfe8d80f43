package engine

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Sena-ops/impactguard/internal/model"
	"github.com/Sena-ops/impactguard/internal/parser"
	"github.com/Sena-ops/impactguard/internal/rules"
)

func mustCompile(t *testing.T, rs []rules.Rule) *rules.Set {
	t.Helper()
	set, err := rules.Compile(rs)
	if err != nil {
		t.Fatal(err)
	}
	return set
}

func TestMatchFileSoCaminho(t *testing.T) {
	set := mustCompile(t, []rules.Rule{
		{Name: "deploy", Paths: []string{"deploy/*.yml"}, Severity: model.SevHigh, Description: "config de deploy"},
	})

	// dispara pelo caminho mesmo sem nenhuma adição
	evs := MatchFile("deploy/clowdapp.yml", nil, set)
	if len(evs) != 1 {
		t.Fatalf("esperado 1 evidência, obtido %d", len(evs))
	}
	if len(evs[0].Details) != 0 {
		t.Errorf("esperado details vazio, obtido %v", evs[0].Details)
	}
	if evs[0].Severity != model.SevHigh || evs[0].Category != "deploy" {
		t.Errorf("evidência errada: %+v", evs[0])
	}

	// glob de um segmento não casa subdiretório
	if evs := MatchFile("deploy/sub/clowdapp.yml", nil, set); len(evs) != 0 {
		t.Errorf("esperado 0 evidências, obtido %d", len(evs))
	}
}

func TestMatchFileConteudo(t *testing.T) {
	set := mustCompile(t, []rules.Rule{
		{Name: "kessel", ContentPatterns: []string{"kessel"}, Severity: model.SevCritical, Description: "integração kessel"},
	})

	adds := []parser.AddedLine{
		{Text: "from app import Kessel", Line: 7},
		{Text: "nada relevante", Line: 8},
	}

	evs := MatchFile("src/app.py", adds, set)
	if len(evs) != 1 {
		t.Fatalf("esperado 1 evidência, obtido %d", len(evs))
	}
	want := "Found `Kessel` in `src/app.py` at line 7"
	if len(evs[0].Details) != 1 || evs[0].Details[0] != want {
		t.Errorf("esperado %q, obtido %v", want, evs[0].Details)
	}
}

func TestMatchFileConteudoSemMatchNaoDispara(t *testing.T) {
	// caminho casando não basta quando a regra tem filtro de conteúdo
	set := mustCompile(t, []rules.Rule{
		{Name: "r", Paths: []string{"**/*kessel*"}, ContentPatterns: []string{"kessel"}, Severity: model.SevCritical, Description: "d"},
	})

	adds := []parser.AddedLine{{Text: "linha neutra", Line: 1}}
	if evs := MatchFile("src/kessel_client.py", adds, set); len(evs) != 0 {
		t.Errorf("esperado 0 evidências, obtido %d", len(evs))
	}
}

func TestMatchFileDeduplica(t *testing.T) {
	// dois padrões casando o mesmo trecho na mesma linha produzem um detalhe só
	set := mustCompile(t, []rules.Rule{
		{Name: "r", ContentPatterns: []string{"kessel", "kes+el"}, Severity: model.SevLow, Description: "d"},
	})

	adds := []parser.AddedLine{{Text: "usa kessel", Line: 3}}
	evs := MatchFile("f.py", adds, set)
	if len(evs) != 1 {
		t.Fatalf("esperado 1 evidência, obtido %d", len(evs))
	}
	if len(evs[0].Details) != 1 {
		t.Errorf("esperado 1 detalhe, obtido %v", evs[0].Details)
	}
}

func TestMatchFileLimitaDetalhes(t *testing.T) {
	set := mustCompile(t, []rules.Rule{
		{Name: "r", ContentPatterns: []string{"token\\d+"}, Severity: model.SevLow, Description: "d"},
	})

	var adds []parser.AddedLine
	for i := 1; i <= 8; i++ {
		adds = append(adds, parser.AddedLine{Text: fmt.Sprintf("token%d", i), Line: i})
	}

	evs := MatchFile("f.py", adds, set)
	if len(evs) != 1 {
		t.Fatalf("esperado 1 evidência, obtido %d", len(evs))
	}
	if len(evs[0].Details) != 5 {
		t.Fatalf("esperado 5 detalhes, obtido %d", len(evs[0].Details))
	}
	// mantém a ordem de descoberta
	if !strings.Contains(evs[0].Details[0], "token1") || !strings.Contains(evs[0].Details[4], "token5") {
		t.Errorf("ordem errada: %v", evs[0].Details)
	}
}

func TestMatchFileOrdemDasRegras(t *testing.T) {
	set := mustCompile(t, []rules.Rule{
		{Name: "segunda_declarada", ContentPatterns: []string{"alvo"}, Severity: model.SevLow, Description: "d"},
		{Name: "primeira_no_caminho", Paths: []string{"*.py"}, Severity: model.SevMedium, Description: "d"},
	})

	adds := []parser.AddedLine{{Text: "alvo aqui", Line: 1}}
	evs := MatchFile("f.py", adds, set)
	if len(evs) != 2 {
		t.Fatalf("esperado 2 evidências, obtido %d", len(evs))
	}
	// ordem de declaração, não de tipo de filtro
	if evs[0].Category != "segunda_declarada" || evs[1].Category != "primeira_no_caminho" {
		t.Errorf("ordem errada: %s, %s", evs[0].Category, evs[1].Category)
	}
}
