package cmd

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"socialcal/api"
	"socialcal/auth"
	"socialcal/format"
	"socialcal/shared"
	"socialcal/term"
	"socialcal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var dashboardWeb bool

var dashboardCmd = &cobra.Command{
	Use:     "dashboard",
	Aliases: []string{"db"},
	Short:   "Show the dashboard",
	Args:    cobra.NoArgs,
	Run:     dashboard,
}

func init() {
	RootCmd.AddCommand(dashboardCmd)

	dashboardCmd.Flags().BoolVar(&dashboardWeb, "web", false, "Open the dashboard in the web app")
}

func dashboard(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	if dashboardWeb {
		ui.OpenWebApp("Opening the dashboard in your browser...", cfg.WebUrl, "/dashboard")
		return
	}

	showDashboard()
}

func showDashboard() {
	name := auth.CurrentSession().DisplayName()
	if name == "" {
		name = "User"
	}

	var analytics *shared.DashboardAnalytics
	var summary *shared.InboxSummary

	term.StartSpinner("")

	errCh := make(chan *shared.ApiError, 2)

	go func() {
		res, apiErr := api.Client.GetDashboardAnalytics()
		if apiErr != nil {
			errCh <- apiErr
			return
		}
		analytics = res
		errCh <- nil
	}()

	go func() {
		res, apiErr := api.Client.GetInboxSummary()
		if apiErr != nil {
			errCh <- apiErr
			return
		}
		summary = res
		errCh <- nil
	}()

	var unauthorized *shared.ApiError
	for i := 0; i < 2; i++ {
		apiErr := <-errCh
		if apiErr == nil {
			continue
		}
		if shared.IsUnauthorized(apiErr) {
			unauthorized = apiErr
			continue
		}
		// the dashboard still renders without the section
		log.Printf("dashboard: %v\n", apiErr)
	}

	term.StopSpinner()

	if unauthorized != nil {
		term.HandleApiError(unauthorized)
	}

	md := dashboardMarkdown(name, analytics, summary)
	fmt.Print(term.RenderMarkdown(md))

	fmt.Println(color.New(color.Bold).Sprint("You're now logged in to your social media automation dashboard."))
	fmt.Println()
	term.PrintCmds("", "calendar", "schedule new", "accounts", "inbox", "analytics")
}

func dashboardMarkdown(name string, analytics *shared.DashboardAnalytics, summary *shared.InboxSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Welcome, %s!\n\n", name)

	if analytics != nil {
		b.WriteString("## 📊 Analytics\n\n")
		b.WriteString("| Accounts | Followers | Engagement | Avg. engagement rate |\n")
		b.WriteString("|---|---|---|---|\n")
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n\n",
			analytics.TotalAccounts,
			format.Count(analytics.TotalFollowers),
			format.Count(analytics.TotalEngagement),
			format.Percent(analytics.AverageEngagementRate),
		)

		if len(analytics.Accounts) > 0 {
			for _, acc := range analytics.Accounts {
				fmt.Fprintf(&b, "- %s **@%s** %s followers (%s), %s engagement\n",
					acc.Platform.Icon(),
					acc.AccountUsername,
					format.Count(acc.TotalFollowers),
					format.Signed(acc.FollowerGrowth),
					format.Percent(acc.EngagementRate),
				)
			}
			b.WriteString("\n")
		}
	}

	if summary != nil {
		b.WriteString("## 📥 Inbox\n\n")
		fmt.Fprintf(&b, "**%d** messages, **%d** unread, **%d** priority\n\n",
			summary.TotalMessages, summary.UnreadCount, summary.PriorityCount)

		platforms := make([]string, 0, len(summary.MessagesByPlatform))
		for p := range summary.MessagesByPlatform {
			platforms = append(platforms, p)
		}
		sort.Strings(platforms)
		for _, p := range platforms {
			fmt.Fprintf(&b, "- %s %s: %d\n", shared.Platform(p).Icon(), shared.Capitalize(p), summary.MessagesByPlatform[p])
		}
		if len(platforms) > 0 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
