package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	utcerror "github.com/msto63/utcdate/foundation/core/error"
	"github.com/msto63/utcdate/pkg/utcdate"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <value>",
		Short: "Check whether a value is a datetime, date or time",
		Args:  cobra.ExactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			value := args[0]

			switch {
			case utcdate.IsDateTimeString(value):
				a.out.ok("valid datetime")
			case utcdate.IsDateString(value):
				a.out.ok("valid date")
			case utcdate.IsTimeString(value):
				a.out.ok("valid time")
			default:
				return utcerror.New("not a YYYY-MM-DD hh:mm:ss datetime, date or time: "+strconv.Quote(value)).
					WithCode(utcerror.CodeInvalidInput).
					WithOperation("cmd.validate").
					WithDetail("value", value)
			}
			return nil
		}),
	}
}
