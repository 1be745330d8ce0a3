package cmd

import (
	"fmt"
	"time"

	"socialcal/api"
	"socialcal/auth"
	"socialcal/calendar"
	"socialcal/format"
	"socialcal/notify"
	"socialcal/shared"
	"socialcal/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var remindersNotify bool

var remindersCmd = &cobra.Command{
	Use:     "reminders",
	Aliases: []string{"rem"},
	Short:   "Show content due in the next 24 hours",
	Args:    cobra.NoArgs,
	Run:     reminders,
}

func init() {
	RootCmd.AddCommand(remindersCmd)

	remindersCmd.Flags().BoolVarP(&remindersNotify, "notify", "n", false, "Also send a desktop notification for each item")
}

func reminders(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	term.StartSpinner("")
	items, apiErr := api.Client.ListScheduledContent(shared.ScheduleFilter{Status: shared.ScheduleStatusPending})
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	now := time.Now()
	due := calendar.DueWithin(items, now, calendar.ReminderWindow)

	if len(due) == 0 {
		fmt.Println("✅ Nothing due in the next 24 hours")
		return
	}

	fmt.Println(color.New(color.Bold, term.ColorHiYellow).Sprintf("⏰ %s", notify.ReminderTitle))
	for _, item := range due {
		fmt.Printf("  %s %s %s · %s\n",
			item.Platform.Icon(),
			item.ContentType.Icon(),
			color.New(color.Bold).Sprint(item.Label()),
			format.When(item.ScheduledTime.Time, now),
		)
	}

	if remindersNotify {
		sent := notify.Reminders(due, now)
		fmt.Println()
		fmt.Printf("🔔 Sent %d of %d notifications\n", sent, len(due))
	}

	fmt.Println()
	term.PrintCmds("", "calendar")
}
