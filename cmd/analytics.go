package cmd

import (
	"fmt"

	"socialcal/api"
	"socialcal/auth"
	"socialcal/format"
	"socialcal/shared"
	"socialcal/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"
)

var (
	analyticsDays int
	analyticsTree bool
)

var analyticsCmd = &cobra.Command{
	Use:     "analytics",
	Aliases: []string{"an"},
	Short:   "Show analytics across accounts",
	Args:    cobra.NoArgs,
	Run:     dashboardAnalytics,
}

var dashboardAnalyticsCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show totals and a row per account",
	Args:  cobra.NoArgs,
	Run:   dashboardAnalytics,
}

var accountAnalyticsCmd = &cobra.Command{
	Use:   "account <id>",
	Short: "Show daily analytics for one account",
	Args:  cobra.ExactArgs(1),
	Run:   accountAnalytics,
}

func init() {
	RootCmd.AddCommand(analyticsCmd)
	analyticsCmd.AddCommand(dashboardAnalyticsCmd)
	analyticsCmd.AddCommand(accountAnalyticsCmd)

	for _, c := range []*cobra.Command{analyticsCmd, dashboardAnalyticsCmd} {
		c.Flags().BoolVar(&analyticsTree, "tree", false, "Group accounts under their platform")
	}
	accountAnalyticsCmd.Flags().IntVarP(&analyticsDays, "days", "d", 30, "Number of days to show")
}

func dashboardAnalytics(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	term.StartSpinner("")
	res, apiErr := api.Client.GetDashboardAnalytics()
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	fmt.Printf("%s %d accounts  %s %s followers  %s %s engagement  %s %s avg. rate\n\n",
		color.New(color.Bold).Sprint("👥"), res.TotalAccounts,
		color.New(color.Bold).Sprint("📈"), format.Count(res.TotalFollowers),
		color.New(color.Bold).Sprint("💬"), format.Count(res.TotalEngagement),
		color.New(color.Bold).Sprint("⭐"), format.Percent(res.AverageEngagementRate),
	)

	if len(res.Accounts) == 0 {
		fmt.Println("🤷‍♂️ No analytics yet")
		fmt.Println()
		term.PrintCmds("", "accounts connect", "demo")
		return
	}

	if analyticsTree {
		fmt.Println(analyticsByPlatform(res).String())
		return
	}

	table := newTable("Platform", "Account", "Followers", "Growth", "Engagement", "Rate", "Reach", "Impressions", "Top Metric")
	for _, acc := range res.Accounts {
		table.Append([]string{
			format.PlatformLabel(acc.Platform),
			"@" + acc.AccountUsername,
			format.Count(acc.TotalFollowers),
			growth(acc.FollowerGrowth),
			format.Count(acc.TotalEngagement),
			format.Percent(acc.EngagementRate),
			format.Count(acc.TotalReach),
			format.Count(acc.TotalImpressions),
			acc.TopPerformingMetric,
		})
	}
	table.Render()
}

// analyticsByPlatform nests each account's numbers under its platform, platforms in first-seen order.
func analyticsByPlatform(res *shared.DashboardAnalytics) treeprint.Tree {
	tree := treeprint.NewWithRoot(fmt.Sprintf("%d accounts", res.TotalAccounts))

	branches := map[shared.Platform]treeprint.Tree{}
	for _, acc := range res.Accounts {
		branch, ok := branches[acc.Platform]
		if !ok {
			branch = tree.AddBranch(color.New(color.Bold).Sprint(format.PlatformLabel(acc.Platform)))
			branches[acc.Platform] = branch
		}

		node := branch.AddBranch(color.New(color.Bold, term.ColorHiCyan).Sprint("@" + acc.AccountUsername))
		node.AddNode("followers " + format.Count(acc.TotalFollowers) + " (" + growth(acc.FollowerGrowth) + ")")
		node.AddNode("engagement " + format.Count(acc.TotalEngagement) + " at " + format.Percent(acc.EngagementRate))
		node.AddNode("reach " + format.Count(acc.TotalReach) + ", impressions " + format.Count(acc.TotalImpressions))
		if acc.TopPerformingMetric != "" {
			node.AddNode("top: " + acc.TopPerformingMetric)
		}
	}

	return tree
}

func accountAnalytics(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	accountId := mustParseId(args[0], "account")
	if analyticsDays <= 0 {
		term.OutputErrorAndExit("--days must be positive")
	}

	term.StartSpinner("")
	rows, apiErr := api.Client.GetAccountAnalytics(accountId, analyticsDays)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	if len(rows) == 0 {
		fmt.Printf("🤷‍♂️ No analytics for account %d in the last %d days\n", accountId, analyticsDays)
		return
	}

	table := newTable("Date", "Followers", "Following", "Posts", "Likes", "Comments", "Shares", "Views", "Rate", "Reach", "Impressions")
	for _, row := range rows {
		table.Append(analyticsRow(row))
	}
	table.Render()
}

func analyticsRow(row *shared.AnalyticsData) []string {
	return []string{
		row.Date.Format("2006-01-02"),
		format.Count(row.FollowersCount),
		format.Count(row.FollowingCount),
		format.Count(row.PostsCount),
		format.Count(row.TotalLikes),
		format.Count(row.TotalComments),
		format.Count(row.TotalShares),
		format.Count(row.TotalViews),
		format.Percent(row.EngagementRate),
		format.Count(row.Reach),
		format.Count(row.Impressions),
	}
}

func growth(n int64) string {
	return term.Trend(n, format.Signed(n))
}
