package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/Apiary_Go/internal/bootstrap"
	"github.com/osse101/Apiary_Go/internal/snapshot"
	"github.com/osse101/Apiary_Go/internal/validation"
)

func newExportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a compressed snapshot of all saved progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, app *bootstrap.App) error {
				var w io.Writer = cmd.OutOrStdout()
				if out != "-" {
					f, err := os.Create(out)
					if err != nil {
						return err
					}
					defer f.Close()
					w = f
				}

				svc := snapshot.NewService(app.Clock, validation.NewSchemaValidator())
				n, err := svc.Export(ctx, app.Store.Store, w)
				if err != nil {
					return err
				}
				if out != "-" {
					printSuccess(cmd.ErrOrStderr(), "Exported %d keys to %s", n, out)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "apiary.snapshot.zst", `output file, or "-" for stdout`)
	return cmd
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Restore saved progress from a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, app *bootstrap.App) error {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()

				svc := snapshot.NewService(app.Clock, validation.NewSchemaValidator())
				n, err := svc.Import(ctx, app.Store.Store, f)
				if err != nil {
					return err
				}
				app.Service.Reload(ctx)
				printSuccess(cmd.OutOrStdout(), "Imported %d keys from %s", n, args[0])
				return nil
			})
		},
	}
}
