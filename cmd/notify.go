package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Sena-ops/impactguard/internal/logging"
	"github.com/Sena-ops/impactguard/internal/model"
	"github.com/Sena-ops/impactguard/internal/notify"
	"github.com/spf13/cobra"
)

var notifyDebug bool

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Envia o resultado da avaliação para o Slack",
	Long: "Envia o resumo da avaliação para o webhook do Slack. Lê do ambiente:\n" +
		"IMPACTGUARD_SLACK_URL, GITHUB_REPOSITORY, GITHUB_SERVER_URL, PR_NUMBER,\n" +
		"PR_STATUS e OVERALL_IMPACT.",
	Run: func(cmd *cobra.Command, args []string) {
		logging.InitLogger(notifyDebug)
		logger := logging.Logger
		defer logger.Sync()

		webhookURL := os.Getenv("IMPACTGUARD_SLACK_URL")
		prStatus := strings.TrimSpace(os.Getenv("PR_STATUS"))
		if skip, reason := notify.ShouldSkip(webhookURL, prStatus); skip {
			logger.Infof("Notificação pulada: %s", reason)
			return
		}

		repo := os.Getenv("GITHUB_REPOSITORY")
		serverURL := os.Getenv("GITHUB_SERVER_URL")
		prNumber := os.Getenv("PR_NUMBER")
		rawImpact := os.Getenv("OVERALL_IMPACT")
		if repo == "" || serverURL == "" || prNumber == "" || rawImpact == "" {
			logger.Errorf("ambiente incompleto: GITHUB_REPOSITORY, GITHUB_SERVER_URL, PR_NUMBER e OVERALL_IMPACT são obrigatórios")
			os.Exit(1)
		}

		impact, err := model.ParseSeverity(rawImpact)
		if err != nil {
			logger.Errorw("OVERALL_IMPACT inválido", "erro", err)
			os.Exit(1)
		}

		prURL := fmt.Sprintf("%s/%s/pull/%s", serverURL, repo, prNumber)
		payload := notify.BuildPayload(repo, prNumber, prURL, impact)

		if err := notify.Send(context.Background(), webhookURL, payload); err != nil {
			logger.Errorw("erro ao enviar notificação", "erro", err)
			os.Exit(1)
		}
		logger.Infof("Notificação enviada (impacto: %s)", impact)
	},
}

func init() {
	notifyCmd.Flags().BoolVar(&notifyDebug, "debug", false, "Habilita logs em nível debug")
	rootCmd.AddCommand(notifyCmd)
}
