package config

import "errors"

var (
	ErrRedisAddrMissing        = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB          = errors.New("REDIS_DB must be a valid integer")
	ErrEmptyCatalog            = errors.New("prize catalog must not be empty")
	ErrDuplicatePrize          = errors.New("prize catalog contains a duplicate name")
	ErrInvalidTimezone         = errors.New("CAMPAIGN_TIMEZONE is not a valid IANA timezone")
	ErrStoragePathMissing      = errors.New("DB_PATH is required")
	ErrAdminCredentialsMissing = errors.New("ADMIN_USER and ADMIN_PASS are required")
)
