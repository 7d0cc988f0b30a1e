package config

import "time"

func ValidateForRun(cfg *Config) error {
	if err := cfg.Campaign.Validate(); err != nil {
		return err
	}

	if _, err := time.LoadLocation(cfg.Campaign.Timezone); err != nil {
		return ErrInvalidTimezone
	}

	if err := cfg.Redis.Validate(); err != nil {
		return err
	}

	if err := cfg.Storage.Validate(); err != nil {
		return err
	}

	return cfg.Admin.Validate()
}
