package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	utcerror "github.com/msto63/utcdate/foundation/core/error"
	"github.com/msto63/utcdate/pkg/utcdate"
)

// newShiftCmd builds "add" or "remove".
func newShiftCmd(a *app, verb string) *cobra.Command {
	direction := "forward"
	shift := a.shiftForward
	if verb == "remove" {
		direction = "backward"
		shift = a.shiftBackward
	}

	return &cobra.Command{
		Use:   verb + " <unit> <amount> [datetime]",
		Short: "Move a datetime, or now, " + direction,
		Long: `Move a datetime, or now, ` + direction + ` by a non-negative amount.

Units: years, months, days, hours, minutes, seconds (singular accepted).`,
		Example: "  utcdate " + verb + ` months 1 "2024-01-31 10:00:00"`,
		Args:    cobra.RangeArgs(2, 3),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			u, ok := utcdate.ParseUnit(args[0])
			if !ok {
				return invalidInput(verb, "unknown unit %q", args[0])
			}

			amount, err := strconv.Atoi(args[1])
			if err != nil {
				return utcerror.Wrap(err, "amount must be an integer").
					WithCode(utcerror.CodeInvalidAmount).
					WithOperation("cmd."+verb).
					WithDetail("amount", args[1])
			}

			result, err := shift(u, amount, args[2:]...)
			if err != nil {
				return err
			}

			a.out.value(result)
			return nil
		}),
	}
}

func (a *app) shiftForward(u utcdate.Unit, amount int, datetime ...string) (string, error) {
	return a.calendar.Add(u, amount, datetime...)
}

func (a *app) shiftBackward(u utcdate.Unit, amount int, datetime ...string) (string, error) {
	return a.calendar.Remove(u, amount, datetime...)
}
