package parser

import (
	"regexp"
	"strconv"
	"strings"
)

// AddedLine é uma linha adicionada do diff com o número que ela terá
// no arquivo resultante.
type AddedLine struct {
	Text string
	Line int
}

// cabeçalho de hunk: @@ -a[,b] +c[,d] @@
var hunkHeader = regexp.MustCompile(`^@@ -\d+(?:,\d+)? \+(\d+)(?:,\d+)? @@`)

// Additions percorre o diff unificado de um arquivo e devolve as
// linhas adicionadas com seus números no arquivo novo, na ordem do
// diff. Cada cabeçalho de hunk reposiciona o cursor; remoções não o
// avançam; linhas de contexto avançam sem emitir. Diff sem hunk
// (ex.: aviso de arquivo binário) devolve vazio.
func Additions(diff string) []AddedLine {
	var out []AddedLine
	current := 0

	for _, line := range strings.Split(diff, "\n") {
		if m := hunkHeader.FindStringSubmatch(line); m != nil {
			current, _ = strconv.Atoi(m[1])
			continue
		}

		switch {
		case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
			out = append(out, AddedLine{Text: line[1:], Line: current})
			current++
		case strings.HasPrefix(line, "-"):
			// remoção não conta no arquivo novo
		case strings.HasPrefix(line, `\`):
			// marcador "\ No newline at end of file"
		default:
			current++
		}
	}
	return out
}
