package report

import (
	"encoding/json"
	"fmt"

	"github.com/Sena-ops/impactguard/internal/model"
)

// JSON serializa o relatório na forma estruturada consumida por
// automação (artifact de CI).
func JSON(r *model.Report) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal relatório: %w", err)
	}
	return data, nil
}
