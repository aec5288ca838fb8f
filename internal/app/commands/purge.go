package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"stock_synth/internal/app/di"
)

func newPurgeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Delete expired comparison workspaces",
		Long: `Run the workspace purge job once. Database-backed workspaces past
their expiry are deleted; Redis-backed ones expire on their own.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig(ctx)
			if err != nil {
				return err
			}
			st, err := openStores(ctx, cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			n, err := di.NewWorkspaceUsecase(st.rdb, st.db, cfg.Workspace).PurgeExpired(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "purged %d expired workspaces\n", n)
			return nil
		},
	}
}
