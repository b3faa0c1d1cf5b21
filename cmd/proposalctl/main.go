// Command proposalctl is the operator CLI: bulk imports of external orders,
// schema migration and history inspection.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fluxo_propostas/internal/app"
	"fluxo_propostas/internal/config"
	"fluxo_propostas/internal/infrastructure/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type cli struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{v: config.NewViper()}

	root := &cobra.Command{
		Use:           "proposalctl",
		Short:         "Operate the proposal pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return c.initConfig()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "config file (default: ./config.yaml when present)")
	flags.String("dsn", "", "database DSN (overrides database.dsn)")
	flags.String("driver", "", "database driver: sqlite or postgres")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")

	_ = c.v.BindPFlag("database.dsn", flags.Lookup("dsn"))
	_ = c.v.BindPFlag("database.driver", flags.Lookup("driver"))
	_ = c.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = c.v.BindPFlag("logging.format", flags.Lookup("log-format"))

	root.AddCommand(c.importCmd())
	root.AddCommand(c.migrateCmd())
	root.AddCommand(c.historyCmd())
	return root
}

func (c *cli) initConfig() error {
	cfg, err := config.Load(c.v, c.cfgFile)
	if err != nil {
		return err
	}
	if err := logging.Setup(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	c.cfg = cfg
	return nil
}

// open builds the container and runs pending migrations when auto_migrate is on.
func (c *cli) open(ctx context.Context) (*app.Container, error) {
	container, err := app.New(ctx, c.cfg)
	if err != nil {
		return nil, err
	}
	if c.cfg.Database.AutoMigrate {
		if err := container.Migrate(ctx); err != nil {
			_ = container.Close(ctx)
			return nil, err
		}
	}
	return container, nil
}
