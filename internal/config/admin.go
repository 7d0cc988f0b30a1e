package config

import "os"

const (
	adminUserEnv = "ADMIN_USER"
	adminPassEnv = "ADMIN_PASS"

	defaultAdminUser = "admin"
	defaultAdminPass = "admin123"
)

type AdminConfig struct {
	User     string
	Password string
}

func LoadAdminConfig() *AdminConfig {
	user := os.Getenv(adminUserEnv)
	if user == "" {
		user = defaultAdminUser
	}

	password := os.Getenv(adminPassEnv)
	if password == "" {
		password = defaultAdminPass
	}

	return &AdminConfig{
		User:     user,
		Password: password,
	}
}

func (c *AdminConfig) Validate() error {
	if c == nil || c.User == "" || c.Password == "" {
		return ErrAdminCredentialsMissing
	}
	return nil
}
