package gitdiff

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Client busca arquivos alterados e diffs via `git` no diretório Dir
// (vazio = diretório corrente). Implementa engine.Differ.
type Client struct {
	Dir string
}

// ChangedFiles executa `git diff --name-only base...head` e retorna
// os caminhos na ordem emitida pelo git.
func (c *Client) ChangedFiles(baseRef, headRef string) ([]string, error) {
	out, err := c.run("diff", "--name-only", baseRef+"..."+headRef)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}

// FileDiff executa `git diff base...head -- path` e retorna o diff
// unificado bruto daquele arquivo.
func (c *Client) FileDiff(baseRef, headRef, path string) (string, error) {
	out, err := c.run("diff", baseRef+"..."+headRef, "--", path)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (c *Client) run(args ...string) ([]byte, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = c.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("erro ao executar git %s: %v\nstderr: %s",
			strings.Join(args, " "), err, stderr.String())
	}
	return stdout.Bytes(), nil
}
