package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fernando-m-vale/superseller-ia-sub001/pkg/log"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "evaluator",
		Short: "Avalia anúncios offline a partir de fotografias JSON",
		Long: `evaluator executa o motor de qualidade de anúncios sobre uma fotografia já
materializada (anúncio, preço, frete, métricas diárias, concorrentes, amostra da
categoria e histórico de hacks) sem acessar banco de dados nem o Mercado Livre.

A saída é determinística: a mesma fotografia e o mesmo instante produzem o mesmo JSON.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Configure(logLevel)
			logrus.SetOutput(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "nível de log (debug, info, warn, error)")
	rootCmd.AddCommand(newEvaluateCmd())

	return rootCmd
}
