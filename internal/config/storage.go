package config

import "os"

const (
	dbPathEnv     = "DB_PATH"
	defaultDBPath = "tombola.db"
)

type StorageConfig struct {
	// Path is the SQLite database file backing the allocation ledger.
	Path string
}

func LoadStorageConfig() *StorageConfig {
	path := os.Getenv(dbPathEnv)
	if path == "" {
		path = defaultDBPath
	}

	return &StorageConfig{Path: path}
}

func (c *StorageConfig) Validate() error {
	if c == nil || c.Path == "" {
		return ErrStoragePathMissing
	}
	return nil
}
