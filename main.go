package main

import "github.com/Sena-ops/impactguard/cmd"

func main() {
	cmd.Execute()
}
