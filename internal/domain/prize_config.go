package domain

import "context"

//go:generate mockgen -source=prize_config.go -destination=prize_config_mock.go -package=domain

// PrizeConfigRepository holds the admin-mutable weight and daily-cap
// values per prize. Writes are last-write-wins; an allocation uses
// whatever values it reads at the moment of the draw.
type PrizeConfigRepository interface {
	GetWeights(ctx context.Context, catalog Catalog) (map[string]PrizeWeight, error)
	SetWeight(ctx context.Context, prize string, weight float64) error
	GetCaps(ctx context.Context, catalog Catalog) (map[string]PrizeCap, error)
	SetCap(ctx context.Context, prize string, cap *int64) error
}
