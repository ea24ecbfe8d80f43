package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "impactguard",
	Short: "ImpactGuard - Avaliação de impacto de deploy a partir de diffs",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
