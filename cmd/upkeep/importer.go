package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/upkeep/internal/cli"
	"github.com/Veraticus/upkeep/internal/common"
	"github.com/Veraticus/upkeep/internal/importer"
)

func importerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "importer",
		Short: "Inspect and drive content importers",
		Long:  `Show what an importer's master control offers in its current state, or press it.`,
	}

	cmd.AddCommand(importerStatusCmd())
	cmd.AddCommand(importerPressCmd())

	return cmd
}

func importerStatusCmd() *cobra.Command {
	var disabled bool

	cmd := &cobra.Command{
		Use:   "status <importer-id>",
		Short: "Show the importer's control",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}

			imp, err := s.snap.Importer(args[0])
			if err != nil {
				return common.NewUserError("No such importer in the snapshot", err)
			}

			header, err := importer.Describe(imp.Status, !disabled, s.translator)
			if err != nil {
				return err
			}

			return cli.RenderImporterHeader(cmd.OutOrStdout(), imp.Status, header)
		},
	}

	cmd.Flags().BoolVar(&disabled, "disabled", false, "treat the importer UI as disabled")

	return cmd
}

func importerPressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "press <importer-id>",
		Short: "Press the importer's control",
		Long: `Press the importer's master control: start an inactive importer, cancel or
stop a running one, or reset a finished one. Uploads cannot be interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}

			imp, err := s.snap.Importer(args[0])
			if err != nil {
				return common.NewUserError("No such importer in the snapshot", err)
			}

			header, err := importer.Describe(imp.Status, true, s.translator)
			if err != nil {
				return err
			}
			if !header.CanCancel {
				return common.NewUserError(fmt.Sprintf("The %q control is disabled while the importer is %s", header.Label, imp.Status.ImporterState.Name()), nil)
			}

			action, err := importer.Press(cmd.Context(), importer.LoggingActions{}, imp.SiteID, imp.Status)
			if err != nil {
				return fmt.Errorf("failed to %s import: %w", action, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("%s: %s requested for site %d", header.Label, action, imp.SiteID)))
			return nil
		},
	}

	return cmd
}
