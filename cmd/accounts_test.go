package cmd

import (
	"testing"

	"socialcal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAccounts() []*shared.SocialAccount {
	return []*shared.SocialAccount{
		{AccountId: 1, Platform: shared.PlatformInstagram, Username: "acme_studio"},
		{AccountId: 2, Platform: shared.PlatformTiktok, Username: "acme"},
		{AccountId: 7, Platform: shared.PlatformFacebook, Username: "bakery.daily"},
	}
}

func TestMatchAccount(t *testing.T) {
	accounts := testAccounts()

	tests := []struct {
		query string
		want  int64
	}{
		{"7", 7},
		{"#1", 1},
		{"acme", 2},
		{"@ACME", 2},
		{"bakery", 7},
		{"studio", 1},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			acc, err := matchAccount(tt.query, accounts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, acc.AccountId)
		})
	}
}

func TestMatchAccountNoMatch(t *testing.T) {
	_, err := matchAccount("zebra", testAccounts())
	assert.EqualError(t, err, `no account matches "zebra"`)
}

func TestParseEnums(t *testing.T) {
	p, err := parsePlatform(" TikTok ")
	require.NoError(t, err)
	assert.Equal(t, shared.PlatformTiktok, p)

	_, err = parsePlatform("myspace")
	assert.EqualError(t, err, `unknown platform "myspace" (expected one of instagram, facebook, tiktok)`)

	c, err := parseContentType("Reel")
	require.NoError(t, err)
	assert.Equal(t, shared.ContentTypeReel, c)

	_, err = parseMessageStatus("deleted")
	assert.Error(t, err)
}
