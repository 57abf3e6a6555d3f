package main

import (
	"errors"

	"servicerequest-service/internal/app/models"

	"github.com/spf13/cobra"
)

func findCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Look up a ServiceRequest by id or by patient identifier",
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := cmd.Flags().GetString("id")
			system, _ := cmd.Flags().GetString("system")
			value, _ := cmd.Flags().GetString("value")

			if id == "" && (system == "" || value == "") {
				return errors.New("either --id or both --system and --value are required")
			}

			app, err := newCLIApp(cmd, true)
			if err != nil {
				return err
			}
			ctx := commandContext(cmd)
			defer app.Close(ctx)

			var serviceRequest models.ServiceRequest
			if id != "" {
				serviceRequest, err = app.Repository.FindByID(ctx, id)
			} else {
				serviceRequest, err = app.Repository.FindByPatientIdentifier(ctx, system, value)
			}
			if err != nil {
				return err
			}
			if serviceRequest == nil {
				return errors.New("service request not found")
			}

			return printServiceRequest(cmd.OutOrStdout(), serviceRequest)
		},
	}
	cmd.Flags().String("id", "", "Record identifier")
	cmd.Flags().String("system", "", "Patient identifier system")
	cmd.Flags().String("value", "", "Patient identifier value")
	return cmd
}
