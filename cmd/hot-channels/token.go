package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/slack-hot-channels/internal/usecases/authenticating"
)

var (
	tokenSubject string
	tokenTTL     time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Gera um token para as rotas /v1 da API de administração",
	Long:  "Gera um token assinado com ADMIN_SECRET. Não precisa de TOKEN nem do arquivo de configurações.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadEnvConfig()
		if err != nil {
			return err
		}

		token, err := authenticating.NewService(cfg).GenerateToken(tokenSubject, tokenTTL)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "admin", "identificação do operador no token")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", authenticating.DefaultTokenTTL, "validade do token")
}
