package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/utcdate/pkg/utcdate"
)

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <field> [datetime]",
		Short: "Print one part of a datetime, or of now",
		Long: `Print one part of a datetime, or of now when it is omitted.

Fields: datetime, date, time, year, month (0-11), day, hour, minute, second.`,
		Example: `  utcdate get month "2024-03-09 07:05:03"
  utcdate get date`,
		Args: cobra.RangeArgs(1, 2),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			name, datetime := args[0], args[1:]

			var (
				v   interface{}
				err error
			)
			switch name {
			case "datetime":
				v, err = a.calendar.GetDateTime(datetime...)
			case "date":
				v, err = a.calendar.GetDate(datetime...)
			case "time":
				v, err = a.calendar.GetTime(datetime...)
			default:
				f, ok := utcdate.ParseField(name)
				if !ok {
					return invalidInput("get", "unknown field %q", name)
				}
				v, err = a.calendar.GetField(f, datetime...)
			}
			if err != nil {
				return err
			}

			a.out.value(v)
			return nil
		}),
	}
}
