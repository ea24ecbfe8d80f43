package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Sena-ops/impactguard/internal/model"
)

// statuses de PR que não devem gerar notificação.
// valores possíveis: draft, open, closed, merged
var skipStatuses = map[string]bool{"draft": true}

var emojiNames = map[model.Severity]string{
	model.SevCritical: ":red_circle:",
	model.SevHigh:     ":large_orange_circle:",
	model.SevMedium:   ":large_yellow_circle:",
	model.SevLow:      ":large_green_circle:",
}

// Payload é a mensagem Block Kit enviada ao webhook do Slack.
type Payload struct {
	Blocks []Block `json:"blocks"`
}

type Block struct {
	Type     string    `json:"type"`
	Text     *Text     `json:"text,omitempty"`
	Fields   []Text    `json:"fields,omitempty"`
	Elements []Element `json:"elements,omitempty"`
}

type Text struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type Element struct {
	Type string `json:"type"`
	Text *Text  `json:"text,omitempty"`
	URL  string `json:"url,omitempty"`
}

// ShouldSkip decide se a notificação deve ser pulada (condição
// explícita, não erro): sem webhook configurado ou PR em rascunho.
func ShouldSkip(webhookURL, prStatus string) (bool, string) {
	if webhookURL == "" {
		return true, "webhook não configurado"
	}
	if skipStatuses[prStatus] {
		return true, fmt.Sprintf("status do PR é %q", prStatus)
	}
	return false, ""
}

// BuildPayload monta a mensagem de resumo: cabeçalho, campos
// (repositório, PR, impacto) e botão para o PR.
func BuildPayload(repo, prNumber, prURL string, impact model.Severity) Payload {
	emoji, ok := emojiNames[impact]
	if !ok {
		emoji = ":white_circle:"
	}
	return Payload{
		Blocks: []Block{
			{
				Type: "header",
				Text: &Text{Type: "plain_text", Text: "Deployment Impact Assessment"},
			},
			{
				Type: "section",
				Fields: []Text{
					{Type: "mrkdwn", Text: "*Repository:*\n" + repo},
					{Type: "mrkdwn", Text: fmt.Sprintf("*Pull Request:*\n<%s|#%s>", prURL, prNumber)},
					{Type: "mrkdwn", Text: fmt.Sprintf("*Overall Impact:*\n%s %s", emoji, impact.Label())},
				},
			},
			{
				Type: "actions",
				Elements: []Element{
					{
						Type: "button",
						Text: &Text{Type: "plain_text", Text: "View Pull Request"},
						URL:  prURL,
					},
				},
			},
		},
	}
}

// Send entrega o payload ao webhook. Falha de entrega é erro
// propagado: quem chama decide se derruba a execução — descartar em
// silêncio esconderia um achado crítico dos revisores.
func Send(ctx context.Context, webhookURL string, p Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("montar requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("enviar notificação: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook retornou status %d", resp.StatusCode)
	}
	return nil
}
