package config

import (
	"os"
	"strings"
)

const (
	prizeCatalogEnv     = "PRIZE_CATALOG"
	campaignTimezoneEnv = "CAMPAIGN_TIMEZONE"

	defaultCampaignTimezone = "Africa/Casablanca"
)

// defaultCatalog mirrors the campaign's physical goodie stock.
var defaultCatalog = []string{
	"Porte-clés",
	"Pare-soleil",
	"Casquette",
	"Support téléphone",
	"Repose-tête",
	"Pins",
}

type CampaignConfig struct {
	// Catalog is the ordered list of awardable prize names. The order
	// is the tie-break order of the weighted draw, so it must stay
	// stable across restarts.
	Catalog  []string
	Timezone string
}

func LoadCampaignConfig() *CampaignConfig {
	catalog := defaultCatalog
	if raw := os.Getenv(prizeCatalogEnv); raw != "" {
		parsed := make([]string, 0)
		for _, p := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				parsed = append(parsed, trimmed)
			}
		}
		if len(parsed) > 0 {
			catalog = parsed
		}
	}

	timezone := os.Getenv(campaignTimezoneEnv)
	if timezone == "" {
		timezone = defaultCampaignTimezone
	}

	return &CampaignConfig{
		Catalog:  catalog,
		Timezone: timezone,
	}
}

func (c *CampaignConfig) Validate() error {
	if c == nil || len(c.Catalog) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[string]bool, len(c.Catalog))
	for _, prize := range c.Catalog {
		if seen[prize] {
			return ErrDuplicatePrize
		}
		seen[prize] = true
	}

	return nil
}
