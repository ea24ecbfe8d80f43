package model

// Evidence é um achado de uma regra contra um arquivo alterado.
// Imutável depois de adicionado ao Report.
type Evidence struct {
	Category       string   `json:"category"`     // nome da regra
	Severity       Severity `json:"impact_level"` // severidade da regra
	FilePath       string   `json:"file_path"`    // caminho relativo/normalizado
	Description    string   `json:"description"`  // descrição curta
	Details        []string `json:"details"`      // "Found `x` in `f` at line N", máx. 5
	Recommendation string   `json:"recommendation,omitempty"`
}

// Summary são as contagens por severidade (NONE nunca vira evidência).
type Summary struct {
	TotalItems int `json:"total_items"`
	Critical   int `json:"critical"`
	High       int `json:"high"`
	Medium     int `json:"medium"`
	Low        int `json:"low"`
}

// Report é o resultado de uma análise. Pertence a uma única execução;
// Overall começa em NONE e só sobe.
type Report struct {
	Overall      Severity   `json:"overall_impact"`
	Summary      Summary    `json:"summary"`
	Items        []Evidence `json:"items"`
	ChangedFiles []string   `json:"changed_files"`
}

func NewReport() *Report {
	return &Report{
		Overall:      SevNone,
		Items:        []Evidence{},
		ChangedFiles: []string{},
	}
}

// Add anexa a evidência e eleva Overall se necessário. A ordem de
// inserção é preservada (ordem dos arquivos × ordem das regras).
func (r *Report) Add(e Evidence) {
	r.Items = append(r.Items, e)
	r.Overall = MaxSeverity(r.Overall, e.Severity)
}

// Finalize calcula o Summary a partir das evidências acumuladas.
func (r *Report) Finalize() {
	s := Summary{TotalItems: len(r.Items)}
	for _, e := range r.Items {
		switch e.Severity {
		case SevCritical:
			s.Critical++
		case SevHigh:
			s.High++
		case SevMedium:
			s.Medium++
		case SevLow:
			s.Low++
		}
	}
	r.Summary = s
}

// ItemsBySeverity agrupa as evidências mantendo a ordem de inserção
// dentro de cada nível.
func (r *Report) ItemsBySeverity() map[Severity][]Evidence {
	out := make(map[Severity][]Evidence)
	for _, e := range r.Items {
		out[e.Severity] = append(out[e.Severity], e)
	}
	return out
}
