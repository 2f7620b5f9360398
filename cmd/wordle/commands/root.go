package commands

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/internal/config"
	"github.com/robalobadob/wordle/internal/db"
	"github.com/robalobadob/wordle/internal/stats"
	"github.com/robalobadob/wordle/internal/words"
)

// app holds what every subcommand needs, built once in PersistentPreRunE.
type app struct {
	cfg    config.Config
	db     *sql.DB
	dict   *words.Dictionary
	stats  *stats.Store
	picker words.Picker
}

var (
	appCtx *app

	dbPath   string
	logLevel string
	mode     string
)

// Execute runs the root command.
func Execute() error {
	root := &cobra.Command{
		Use:           "wordle",
		Short:         "Guess the five-letter word in six tries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if dbPath != "" {
				cfg.DBPath = dbPath
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if mode != "" {
				cfg.PickMode = mode
			}

			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
				With().Timestamp().Logger()
			cfg.ApplyLogLevel()

			m, err := words.ParseMode(cfg.PickMode)
			if err != nil {
				return err
			}
			dict, err := words.Load(cfg.AnswersFile, cfg.AllowedFile)
			if err != nil {
				return fmt.Errorf("load word lists: %w", err)
			}
			sqlDB, err := db.OpenMigrated(cmd.Context(), cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}

			appCtx = &app{
				cfg:    cfg,
				db:     sqlDB,
				dict:   dict,
				stats:  stats.NewStore(sqlDB),
				picker: words.Picker{Dict: dict, Mode: m, Salt: cfg.DailySalt},
			}
			a, g := dict.Stats()
			log.Debug().Int("answers", a).Int("allowed", g).Str("mode", string(m)).Msg("word lists loaded")
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if appCtx != nil && appCtx.db != nil {
				return appCtx.db.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (default $DB_PATH or ./data/wordle.db)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&mode, "mode", "", "answer selection: sequential, random or daily")

	root.AddCommand(playCmd(), serveCmd(), statsCmd())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}
	return nil
}
