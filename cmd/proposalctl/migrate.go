package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func (c *cli) migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Long: `Applies the schema for every table and creates the carriers, boxes and
sellers listed under seed in the configuration.`,
		Args: cobra.NoArgs,
		RunE: c.runMigrate,
	}
	cmd.Flags().Bool("skip-seed", false, "only migrate the schema")
	return cmd
}

func (c *cli) runMigrate(cmd *cobra.Command, _ []string) error {
	skipSeed, _ := cmd.Flags().GetBool("skip-seed")
	ctx := cmd.Context()

	slog.Info("[migrate][cli] starting", "driver", c.cfg.Database.Driver)
	container, err := c.open(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = container.Close(ctx) }()

	if err := container.Migrate(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	if !skipSeed {
		if err := container.Seed(ctx); err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
	return nil
}
