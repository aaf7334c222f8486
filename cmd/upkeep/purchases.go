package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Veraticus/upkeep/internal/cli"
	"github.com/Veraticus/upkeep/internal/common"
	"github.com/Veraticus/upkeep/internal/purchases"
)

func purchasesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purchases",
		Short: "Inspect purchases",
		Long:  `List purchases grouped by site, or show every derived fact about one purchase.`,
	}

	cmd.AddCommand(purchasesListCmd())
	cmd.AddCommand(purchasesShowCmd())

	return cmd
}

func purchasesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List purchases grouped by site",
		Long: `List every purchase in the snapshot under its site, in the order sites are
first seen. Purchases on deleted sites are listed under their domain.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}

			groups := purchases.GroupBySite(s.snap.Purchases, s.snap.Sites)
			common.LogDebug("Grouped purchases", common.Fields{"groups": len(groups), "purchases": len(s.snap.Purchases)})

			return cli.RenderSiteGroups(cmd.OutOrStdout(), groups, s.classifier, s.translator)
		},
	}
}

func purchasesShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <purchase-id>",
		Short: "Show every derived fact for a purchase",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return common.NewUserError(fmt.Sprintf("%q is not a purchase id", args[0]), err)
			}

			s, err := openSession()
			if err != nil {
				return err
			}

			p, err := s.snap.Purchase(id)
			if err != nil {
				return common.NewUserError("No such purchase in the snapshot", err)
			}

			return cli.RenderFacts(cmd.OutOrStdout(), p, s.classifier.Facts(p))
		},
	}
}
