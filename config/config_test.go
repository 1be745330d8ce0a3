package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	tcases := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			want: Config{
				ApiBaseUrl:     DefaultApiBaseUrl,
				WebUrl:         DefaultWebUrl,
				Env:            "production",
				RequestTimeout: DefaultRequestTimeout,
				RedirectDelay:  DefaultRedirectDelay,
			},
		},
		{
			name: "overrides",
			env: map[string]string{
				"SOCIALCAL_API_BASE_URL":    "https://api.example.com/",
				"SOCIALCAL_WEB_URL":         "https://app.example.com",
				"SOCIALCAL_ENV":             "development",
				"SOCIALCAL_REQUEST_TIMEOUT": "5s",
				"SOCIALCAL_REDIRECT_DELAY":  "0s",
				"SOCIALCAL_DEBUG":           "true",
			},
			want: Config{
				ApiBaseUrl:     "https://api.example.com",
				WebUrl:         "https://app.example.com",
				Env:            "development",
				RequestTimeout: 5 * time.Second,
				RedirectDelay:  0,
				Debug:          true,
			},
		},
		{
			name: "invalid values fall back",
			env: map[string]string{
				"SOCIALCAL_REQUEST_TIMEOUT": "soon",
				"SOCIALCAL_DEBUG":           "maybe",
			},
			want: Config{
				ApiBaseUrl:     DefaultApiBaseUrl,
				WebUrl:         DefaultWebUrl,
				Env:            "production",
				RequestTimeout: DefaultRequestTimeout,
				RedirectDelay:  DefaultRedirectDelay,
			},
		},
	}

	for _, tc := range tcases {
		t.Run(tc.name, func(t *testing.T) {
			for _, key := range []string{
				"SOCIALCAL_API_BASE_URL", "SOCIALCAL_WEB_URL", "SOCIALCAL_ENV",
				"SOCIALCAL_REQUEST_TIMEOUT", "SOCIALCAL_REDIRECT_DELAY", "SOCIALCAL_DEBUG",
			} {
				t.Setenv(key, tc.env[key])
			}

			cfg := LoadConfig()
			assert.Equal(t, tc.want, *cfg)
			assert.Equal(t, tc.want.Env == "development", cfg.IsDevelopment())
		})
	}
}
