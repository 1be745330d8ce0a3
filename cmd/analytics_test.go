package cmd

import (
	"strings"
	"testing"

	"socialcal/format"
	"socialcal/shared"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsByPlatformGroupsAccounts(t *testing.T) {
	color.NoColor = true

	res := &shared.DashboardAnalytics{
		TotalAccounts: 3,
		Accounts: []shared.AnalyticsSummary{
			{Platform: shared.PlatformInstagram, AccountUsername: "acme_studio", TotalFollowers: 1200, FollowerGrowth: 40, EngagementRate: decimal.RequireFromString("4.5"), TopPerformingMetric: "likes"},
			{Platform: shared.PlatformTiktok, AccountUsername: "acme", TotalFollowers: 800, FollowerGrowth: -5},
			{Platform: shared.PlatformInstagram, AccountUsername: "bakery.daily", TotalFollowers: 90},
		},
	}

	out := analyticsByPlatform(res).String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.Equal(t, "3 accounts", lines[0])

	instagram := format.PlatformLabel(shared.PlatformInstagram)
	tiktok := format.PlatformLabel(shared.PlatformTiktok)
	assert.Equal(t, 1, strings.Count(out, instagram))
	assert.Equal(t, 1, strings.Count(out, tiktok))

	// both instagram accounts sit under the first platform branch, before tiktok
	assert.Less(t, strings.Index(out, instagram), strings.Index(out, "@acme_studio"))
	assert.Less(t, strings.Index(out, "@bakery.daily"), strings.Index(out, tiktok))
	assert.Less(t, strings.Index(out, tiktok), strings.Index(out, "@acme\n"))

	assert.Contains(t, out, "followers "+format.Count(1200)+" (+"+format.Count(40)+")")
	assert.Contains(t, out, "followers "+format.Count(800)+" (-"+format.Count(5)+")")
	assert.Contains(t, out, "engagement 0 at 4.50%")
	assert.Contains(t, out, "top: likes")
	assert.Equal(t, 1, strings.Count(out, "top: "))
}
