package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/helper/foundation/utils/timex"
)

type instantView struct {
	Instant string `json:"instant"`
	Date    string `json:"date"`
	Hour    int    `json:"hour"`
	Minute  int    `json:"minute"`
	Second  int    `json:"second"`
	Offset  string `json:"offset"`
	UTC     string `json:"utc"`
}

func newInstantView(i timex.Instant) instantView {
	return instantView{
		Instant: i.String(),
		Date:    i.Date.String(),
		Hour:    i.Hour,
		Minute:  i.Minute,
		Second:  i.Second,
		Offset:  timex.OffsetString(i.Offset),
		UTC:     timex.ToUTC(i).String(),
	}
}

type instantComparisonView struct {
	SameDay     bool        `json:"same_day"`
	DaysBetween int         `json:"days_between"`
	Begin       instantView `json:"begin"`
	End         instantView `json:"end"`
	HourDiff    int         `json:"hour_diff"`
	MinuteDiff  int         `json:"minute_diff"`
	SecondDiff  int         `json:"second_diff"`
}

func newDatetimesCmd(a *app) *cobra.Command {
	datetimesCmd := &cobra.Command{
		Use:   "datetimes",
		Short: "Normalize, compare and convert instants",
		Long: `Normalize, compare and convert instants.

Values may be ISO 8601 strings ("2024-01-01T23:30:00+02:00"), JSON arrays
("[2024,1,1,23,30,0,7200]") or JSON records with an optional offset
('{"year":2024,"month":1,"day":1,"hour":23,"min":30,"sec":0,"offset":"+02:00"}').`,
	}

	normalizeCmd := &cobra.Command{
		Use:   "normalize <value>",
		Short: "Convert a value to an instant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := instantArg(args[0])
			if err != nil {
				return err
			}
			view := newInstantView(i)
			return a.print(cmd, view, func(w io.Writer) {
				fmt.Fprintln(w, field("instant", view.Instant))
				fmt.Fprintln(w, field("offset", view.Offset))
				fmt.Fprintln(w, field("utc", view.UTC))
			})
		},
	}

	utcCmd := &cobra.Command{
		Use:   "utc <value>",
		Short: "Convert an instant to UTC",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := instantArg(args[0])
			if err != nil {
				return err
			}
			view := newInstantView(timex.ToUTC(i))
			return a.print(cmd, view, func(w io.Writer) {
				fmt.Fprintln(w, view.Instant)
			})
		},
	}

	compareCmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Order two instants and compute their differential",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			first, err := parseArg(args[0], false)
			if err != nil {
				return err
			}
			second, err := parseArg(args[1], false)
			if err != nil {
				return err
			}
			cmp, err := timex.CompareInstants(first, second)
			if err != nil {
				return err
			}
			view := instantComparisonView{
				SameDay:     cmp.SameDay,
				DaysBetween: cmp.DaysBetween,
				Begin:       newInstantView(cmp.Begin),
				End:         newInstantView(cmp.End),
				HourDiff:    cmp.HourDiff,
				MinuteDiff:  cmp.MinuteDiff,
				SecondDiff:  cmp.SecondDiff,
			}
			return a.print(cmd, view, func(w io.Writer) {
				fmt.Fprintln(w, field("same day", view.SameDay))
				fmt.Fprintln(w, field("days between", view.DaysBetween))
				fmt.Fprintln(w, field("begin", view.Begin.Instant))
				fmt.Fprintln(w, field("end", view.End.Instant))
				fmt.Fprintln(w, field("difference", fmt.Sprintf("%dh %dm %ds", view.HourDiff, view.MinuteDiff, view.SecondDiff)))
			})
		},
	}

	datetimesCmd.AddCommand(normalizeCmd, utcCmd, compareCmd)
	return datetimesCmd
}

func instantArg(arg string) (timex.Instant, error) {
	value, err := parseArg(arg, false)
	if err != nil {
		return timex.Instant{}, err
	}
	return timex.ToInstant(value)
}
