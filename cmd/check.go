package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Sena-ops/impactguard/internal/engine"
	"github.com/Sena-ops/impactguard/internal/gitdiff"
	"github.com/Sena-ops/impactguard/internal/logging"
	"github.com/Sena-ops/impactguard/internal/report"
	"github.com/Sena-ops/impactguard/internal/rules"
	"github.com/Sena-ops/impactguard/internal/sarif"
	"github.com/spf13/cobra"
)

const toolVersion = "0.1.0"

// artefatos lidos pela automação de CI depois da execução
const (
	commentArtifact = "/tmp/impactguard-comment.md"
	reportArtifact  = "/tmp/impactguard-report.json"
)

var checkBaseRef string
var checkHeadRef string
var checkConfig string
var checkOutput string
var checkFailOn string
var checkRepoDir string
var checkDebug bool

// formatos aceitos em --output
func validOutput(format string) bool {
	switch format {
	case "json", "markdown", "github", "sarif", "terminal":
		return true
	}
	return false
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Avalia o impacto de deploy das mudanças entre duas revisões",
	Run: func(cmd *cobra.Command, args []string) {
		logging.InitLogger(checkDebug)
		logger := logging.Logger
		defer logger.Sync()

		cfg := rules.DefaultConfig()
		if checkConfig != "" {
			loaded, err := rules.LoadFile(checkConfig)
			if err != nil {
				logger.Errorw("erro ao carregar regras", "erro", err)
				os.Exit(1)
			}
			cfg = loaded
		}
		logger.Debugf("regras carregadas: %d", len(cfg.Set.Rules))

		differ := &gitdiff.Client{Dir: checkRepoDir}
		analyzer := engine.NewAnalyzer(differ, cfg, logger)

		logger.Infof("Analisando mudanças: %s...%s", checkBaseRef, checkHeadRef)
		result := analyzer.Analyze(checkBaseRef, checkHeadRef)
		if len(result.ChangedFiles) == 0 {
			logger.Infof("Nenhum arquivo alterado detectado")
		}

		outFormat := strings.ToLower(checkOutput)
		if !validOutput(outFormat) {
			logger.Errorf("formato de saída desconhecido: %q (use json, markdown, github, sarif ou terminal)", checkOutput)
			os.Exit(1)
		}

		switch outFormat {
		case "json":
			data, err := report.JSON(result)
			if err != nil {
				logger.Errorw("erro ao gerar JSON", "erro", err)
				os.Exit(1)
			}
			fmt.Println(string(data))
			if err := os.WriteFile(reportArtifact, data, 0o644); err != nil {
				logger.Warnw("erro ao salvar artefato JSON", "erro", err)
			}

		case "markdown":
			fmt.Println(report.Markdown(result))

		case "github":
			md := report.Markdown(result)
			fmt.Println(md)
			if err := os.WriteFile(commentArtifact, []byte(md), 0o644); err != nil {
				logger.Warnw("erro ao salvar comentário", "erro", err)
			}

		case "sarif":
			data, err := sarif.Render(result, "ImpactGuard", toolVersion)
			if err != nil {
				logger.Errorw("erro ao gerar SARIF", "erro", err)
				os.Exit(1)
			}
			fmt.Println(string(data))

		case "terminal":
			fmt.Print(report.Terminal(result))
		}

		exceeds, err := engine.Gate(result.Overall, checkFailOn)
		if err != nil {
			logger.Errorw("limiar de --fail-on inválido", "erro", err)
			os.Exit(1)
		}
		if exceeds {
			fmt.Fprintf(os.Stderr, "\n❌ Impact level %s meets or exceeds threshold %s\n",
				result.Overall, checkFailOn)
			os.Exit(1)
		}
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkBaseRef, "base-ref", "", "Revisão base do git")
	checkCmd.Flags().StringVar(&checkHeadRef, "head-ref", "", "Revisão head do git")
	checkCmd.Flags().StringVarP(&checkConfig, "config", "c", "", "Arquivo YAML de regras (padrão: conjunto embutido)")
	checkCmd.Flags().StringVarP(&checkOutput, "output", "o", "github", "Formato da saída (json, markdown, github, sarif, terminal)")
	checkCmd.Flags().StringVar(&checkFailOn, "fail-on", "", "Falha se o impacto atingir este nível (low, medium, high, critical)")
	checkCmd.Flags().StringVar(&checkRepoDir, "repo-dir", "", "Diretório do repositório git (padrão: diretório corrente)")
	checkCmd.Flags().BoolVar(&checkDebug, "debug", false, "Habilita logs em nível debug")
	checkCmd.MarkFlagRequired("base-ref")
	checkCmd.MarkFlagRequired("head-ref")
	rootCmd.AddCommand(checkCmd)
}
