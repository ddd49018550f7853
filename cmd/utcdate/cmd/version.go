package cmd

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/utcdate/pkg/core/version"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			a.out.value(version.String())
			a.out.pair("Go Version:", runtime.Version())
			a.out.pair("OS/Arch:", runtime.GOOS+"/"+runtime.GOARCH)
			return nil
		}),
	}
}
