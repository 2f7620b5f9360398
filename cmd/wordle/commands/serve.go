package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/internal/account"
	"github.com/robalobadob/wordle/internal/httpserver"
	"github.com/robalobadob/wordle/internal/store"
)

func serveCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cfg := appCtx.cfg
			if port != "" {
				cfg.Port = port
			}
			srv := httpserver.New(httpserver.Deps{
				Sessions: store.NewMemoryStore(),
				Stats:    appCtx.stats,
				Users:    account.NewStore(appCtx.db),
				Signer:   account.NewSigner(cfg.JWTSecret, cfg.JWTExpiry),
				Dict:     appCtx.dict,
				Picker:   appCtx.picker,
			}, httpserver.Options{
				ClientOrigin: cfg.ClientOrigin,
				Production:   cfg.Production,
				CookieName:   cfg.CookieName,
				Timeout:      cfg.HandlerLimit,
			})

			addr := ":" + cfg.Port
			log.Info().Str("addr", addr).Bool("production", cfg.Production).Msg("wordle api listening")
			return srv.Serve(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (default $PORT or 5175)")
	return cmd
}
