package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	utcerror "github.com/msto63/utcdate/foundation/core/error"
	"github.com/msto63/utcdate/pkg/utcdate"
)

func newSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <field> <datetime> <value>",
		Short: "Replace one field of a datetime",
		Long: `Replace one field of a datetime and print the result.

Fields: year, month (0-11), day, hour, minute, second. A day that does not
exist in the month carries into the next month.`,
		Example: `  utcdate set day "2024-04-12 10:00:00" 31`,
		Args:    cobra.ExactArgs(3),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			f, ok := utcdate.ParseField(args[0])
			if !ok {
				return invalidInput("set", "unknown field %q", args[0])
			}

			value, err := strconv.Atoi(args[2])
			if err != nil {
				return utcerror.Wrap(err, "value must be an integer").
					WithCode(utcerror.CodeInvalidFieldValue).
					WithOperation("cmd.set").
					WithDetail("value", args[2])
			}

			result, err := a.calendar.SetField(f, args[1], value)
			if err != nil {
				return err
			}

			a.out.value(result)
			return nil
		}),
	}
}
