package main

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"tvremote/internal/locale"
	"tvremote/internal/logging"
	"tvremote/internal/notifications"
	"tvremote/internal/remote"
	"tvremote/internal/television"
)

func newDemoCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var noColor bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Replay the reference remote-control walkthrough",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger()
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			printer, err := locale.New(cfg.Display.Locale)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			// On-screen messages would corrupt the JSON document.
			var screen io.Writer = out
			if jsonOutput {
				screen = cmd.ErrOrStderr()
			}

			tv := television.New(
				television.WithLogger(logger),
				television.WithNotifier(notifications.NewService(cfg, screen, printer)),
				television.WithPrinter(printer),
			)

			correlationID := uuid.NewString()
			runCtx := logging.WithCorrelationID(cmd.Context(), correlationID)
			results, err := remote.NewSession(logger).Run(runCtx, tv, remote.Walkthrough())
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, newDemoJSON(correlationID, results, tv.Status()))
			}

			colorize := !noColor && resolveColor(cfg.Display.Color, out)
			fmt.Fprintln(out, renderResults(results, printer, colorize))
			fmt.Fprintln(out, renderStatusLine(statusOK, tv.Status(), colorize))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print results as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	return cmd
}
