package engine

import (
	"fmt"
	"strings"

	"github.com/Sena-ops/impactguard/internal/model"
	"github.com/Sena-ops/impactguard/internal/parser"
	"github.com/Sena-ops/impactguard/internal/rules"
	"go.uber.org/zap"
)

// Differ é o colaborador que busca a lista de arquivos alterados e o
// diff de cada arquivo entre duas revisões.
type Differ interface {
	ChangedFiles(baseRef, headRef string) ([]string, error)
	FileDiff(baseRef, headRef, path string) (string, error)
}

// Analyzer executa uma análise completa: um Report por chamada,
// arquivos processados sequencialmente na ordem retornada pelo Differ.
type Analyzer struct {
	differ Differ
	config *rules.Config
	log    *zap.SugaredLogger
}

func NewAnalyzer(differ Differ, config *rules.Config, log *zap.SugaredLogger) *Analyzer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Analyzer{differ: differ, config: config, log: log}
}

// Analyze monta o Report entre as duas revisões. Falha de retrieval
// nunca derruba a análise: vira lista vazia ou diff vazio — melhor
// subdetectar do que bloquear trabalho alheio com erro duro.
func (a *Analyzer) Analyze(baseRef, headRef string) *model.Report {
	report := model.NewReport()

	files, err := a.differ.ChangedFiles(baseRef, headRef)
	if err != nil {
		a.log.Errorw("erro ao listar arquivos alterados", "base", baseRef, "head", headRef, "erro", err)
		files = nil
	}
	report.ChangedFiles = append(report.ChangedFiles, files...)

	for _, path := range files {
		if a.excluded(path) {
			a.log.Debugw("arquivo excluído da análise", "arquivo", path)
			continue
		}

		diff, err := a.differ.FileDiff(baseRef, headRef, path)
		if err != nil {
			a.log.Warnw("erro ao obter diff, seguindo com diff vazio", "arquivo", path, "erro", err)
			diff = ""
		}

		adds := parser.Additions(diff)
		for _, e := range MatchFile(path, adds, a.config.Set) {
			report.Add(e)
		}
	}

	report.Finalize()
	return report
}

// excluded informa se o caminho cai em um prefixo excluído (os
// scripts da própria automação nunca geram evidência).
func (a *Analyzer) excluded(path string) bool {
	for _, prefix := range a.config.ExcludePaths {
		if strings.HasPrefix(path, prefix) || path == strings.TrimSuffix(prefix, "/") {
			return true
		}
	}
	return false
}

// Gate compara a severidade geral com o limiar pedido em --fail-on.
// Limiar vazio nunca bloqueia.
func Gate(overall model.Severity, threshold string) (bool, error) {
	if threshold == "" {
		return false, nil
	}
	t, err := model.ParseSeverity(threshold)
	if err != nil {
		return false, err
	}
	if t == model.SevNone {
		return false, fmt.Errorf("limiar inválido: %q", threshold)
	}
	return overall.Meets(t), nil
}
