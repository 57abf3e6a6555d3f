package main

import (
	"errors"
	"fmt"
	"os"

	"servicerequest-service/internal/pkg/exceptions"

	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Run ServiceRequest documents through the write pipeline without storing them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newCLIApp(cmd, false)
			if err != nil {
				return err
			}
			ctx := commandContext(cmd)
			defer app.Close(ctx)

			usecase, err := app.usecase()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				fmt.Fprintf(out, "== %s\n", path)

				content, err := os.ReadFile(path)
				if err != nil {
					fmt.Fprintf(out, "cannot read file: %v\n", err)
					failed++
					continue
				}

				serviceRequest, err := usecase.Validate(ctx, content)
				if err != nil {
					fmt.Fprintf(out, "invalid (%s): %s\n", exceptions.KindOf(err), clientMessage(err))
					failed++
					continue
				}

				err = printServiceRequest(out, serviceRequest)
				if err != nil {
					return err
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d documents failed validation", failed, len(args))
			}
			return nil
		},
	}
}

func clientMessage(err error) string {
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		return customErr.ClientMessage
	}
	return err.Error()
}
