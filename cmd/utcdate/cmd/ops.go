package cmd

import (
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"

	"github.com/msto63/utcdate/pkg/utcdate"
)

func newOpsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List the grouped operations of the library",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			ops := utcdate.Operations()

			names := maps.Keys(ops)
			slices.Sort(names)

			for _, name := range names {
				a.out.pair(name, ops[name])
			}
			return nil
		}),
	}
}
