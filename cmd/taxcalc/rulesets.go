package main

import (
	"fmt"

	"github.com/SscSPs/sme_tax_estimator/internal/core/taxengine"
	"github.com/spf13/cobra"
)

func rulesetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rulesets",
		Short: "List the available ruleset versions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := taxengine.DefaultRegistry()
			for _, v := range reg.Versions() {
				rs, err := reg.Get(v)
				if err != nil {
					return err
				}
				marker := " "
				if v == reg.DefaultVersion() {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\n", marker, rs.Version, rs.Description)
			}
			return nil
		},
	}
}
