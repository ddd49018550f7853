package cmd

import (
	"github.com/spf13/cobra"
)

// newZoneCmd builds "toutc" or "fromutc".
func newZoneCmd(a *app, name string) *cobra.Command {
	short := "Convert a wall clock reading in a zone to UTC"
	if name == "fromutc" {
		short = "Render a UTC datetime as the wall clock reading in a zone"
	}

	return &cobra.Command{
		Use:   name + " <datetime> [zone]",
		Short: short,
		Long: short + `.

The zone is an IANA name such as Europe/Berlin. Without it the
general.default_zone setting applies.`,
		Example: "  utcdate " + name + ` "2024-06-15 12:00:00" Asia/Tokyo`,
		Args:    cobra.RangeArgs(1, 2),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			zone := a.settings.General.DefaultZone
			if len(args) == 2 {
				zone = args[1]
			}

			convert := a.calendar.ToUTC
			if name == "fromutc" {
				convert = a.calendar.FromUTC
			}

			result, err := convert(args[0], zone)
			if err != nil {
				return err
			}

			a.out.value(result)
			return nil
		}),
	}
}
