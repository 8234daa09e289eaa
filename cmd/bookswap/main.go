package main

import (
	"context"
	"errors"
	stdLog "log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/book-swap-service/pkg/postgres"
	"github.com/Astemirdum/book-swap-service/swap/app"
	"github.com/Astemirdum/book-swap-service/swap/config"
	"github.com/Astemirdum/book-swap-service/swap/migrations"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		stdLog.Fatal("load envs from .env ", err)
	}
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "bookswap",
		Short:        "Peer-to-peer book swap service",
		SilenceUsage: true,
	}
	root.AddCommand(serveCmd(), migrateCmd())
	return root
}

func serveCmd() *cobra.Command {
	var (
		logLevel     string
		storeDriver  string
		writeTimeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var opts []config.Option
			if cmd.Flags().Changed("log-level") {
				level, err := zapcore.ParseLevel(logLevel)
				if err != nil {
					return err
				}
				opts = append(opts, config.WithLogLevel(level))
			}
			if cmd.Flags().Changed("store") {
				opts = append(opts, config.WithStoreDriver(storeDriver))
			}
			if cmd.Flags().Changed("write-timeout") {
				opts = append(opts, config.WithWriteTimeout(writeTimeout))
			}
			app.Run(config.NewConfig(opts...))
			return nil
		},
	}
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "override LOG_LEVEL")
	cmd.Flags().StringVar(&storeDriver, "store", config.DriverPostgres, "override STORE_DRIVER (postgres|memory)")
	cmd.Flags().DurationVar(&writeTimeout, "write-timeout", time.Minute, "override HTTP_WRITE")
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate up|down|status",
		Short:     "Apply or inspect database migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var dbCfg postgres.DB
			if err := envconfig.Process("", &dbCfg); err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()
			db, err := postgres.Connect(ctx, &dbCfg)
			if err != nil {
				return err
			}
			defer db.Close()
			return postgres.Migrate(db, migrations.FS, args[0])
		},
	}
}
