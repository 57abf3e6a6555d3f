package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every stored ServiceRequest",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newCLIApp(cmd, true)
			if err != nil {
				return err
			}
			ctx := commandContext(cmd)
			defer app.Close(ctx)

			serviceRequests, err := app.Repository.FindAll(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, serviceRequest := range serviceRequests {
				err = printServiceRequest(out, serviceRequest)
				if err != nil {
					return err
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%d service request(s)\n", len(serviceRequests))
			return nil
		},
	}
}
