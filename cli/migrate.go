package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/goto/folio/internal/store/postgres"
)

func MigrateCmd() *cobra.Command {
	var rollback bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate database schema",
		Example: heredoc.Doc(`
			$ folio migrate
			$ folio migrate --rollback
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			store, err := postgres.NewStore(config.DB)
			if err != nil {
				return fmt.Errorf("connecting to database: %w", err)
			}
			defer store.Close()

			if rollback {
				if err := store.Rollback(); err != nil {
					return fmt.Errorf("rolling back migration: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Rolled back the last migration")
				return nil
			}

			if err := store.Migrate(); err != nil {
				return fmt.Errorf("migrating database: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migration finished")
			return nil
		},
	}

	cmd.Flags().BoolVar(&rollback, "rollback", false, "Roll back the last migration instead")

	return cmd
}
