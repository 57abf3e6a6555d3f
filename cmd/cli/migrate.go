package main

import (
	"fmt"

	"servicerequest-service/internal/pkg/utils"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the indexes used by patient identifier lookups",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newCLIApp(cmd, true)
			if err != nil {
				return err
			}
			ctx := commandContext(cmd)
			defer app.Close(ctx)

			err = utils.LogOperation(app.Log, "ensure_indexes", utils.GetRequestID(ctx), func() error {
				return app.Repository.EnsureIndexes(ctx)
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Indexes ensured on %s.%s\n", app.MongoDB.DatabaseName(), app.MongoDB.CollectionName())
			return nil
		},
	}
}
