package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitDBCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "initdb",
		Short: "Create the messages table if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, repos, err := opts.bootstrap()
			if err != nil {
				return err
			}
			if err := repos.Message.EnsureSchema(cmd.Context()); err != nil {
				return fmt.Errorf("initialize database: %w", err)
			}
			logger.Info("database ready", "driver", cfg.DB.Driver, "path", cfg.DB.Path)
			return nil
		},
	}
}
