package prizeconfig

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/tombola-prize-allocation/internal/domain"
)

const (
	weightKeyPrefix = "tombola:weight:"
	capKeyPrefix    = "tombola:cap:"
)

type weightRecord struct {
	Weight    float64   `json:"weight"`
	UpdatedAt time.Time `json:"updated_at"`
}

type capRecord struct {
	Cap       *int64    `json:"cap"`
	UpdatedAt time.Time `json:"updated_at"`
}

type repository struct {
	client *redis.Client
}

func NewRepository(client *redis.Client) domain.PrizeConfigRepository {
	return &repository{
		client: client,
	}
}

// GetWeights reads the weight record for every catalog prize in a
// single MGET. Prizes without a record fall back to the default weight.
func (r *repository) GetWeights(ctx context.Context, catalog domain.Catalog) (map[string]domain.PrizeWeight, error) {
	keys := make([]string, 0, len(catalog))
	for _, prize := range catalog {
		keys = append(keys, weightKeyPrefix+prize)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	weights := make(map[string]domain.PrizeWeight, len(catalog))
	for i, prize := range catalog {
		weight := domain.PrizeWeight{Prize: prize, Weight: domain.DefaultWeight}

		if raw, ok := values[i].(string); ok {
			var record weightRecord
			if err := json.Unmarshal([]byte(raw), &record); err != nil {
				return nil, ErrInvalidWeightData
			}
			weight.Weight = record.Weight
			weight.UpdatedAt = record.UpdatedAt
		}

		weights[prize] = weight
	}

	return weights, nil
}

func (r *repository) SetWeight(ctx context.Context, prize string, weight float64) error {
	record := weightRecord{
		Weight:    weight,
		UpdatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidWeightData
	}

	return r.client.Set(ctx, weightKeyPrefix+prize, data, 0).Err()
}

// GetCaps reads the cap record for every catalog prize. Prizes without
// a record are unlimited.
func (r *repository) GetCaps(ctx context.Context, catalog domain.Catalog) (map[string]domain.PrizeCap, error) {
	keys := make([]string, 0, len(catalog))
	for _, prize := range catalog {
		keys = append(keys, capKeyPrefix+prize)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	caps := make(map[string]domain.PrizeCap, len(catalog))
	for i, prize := range catalog {
		prizeCap := domain.PrizeCap{Prize: prize}

		if raw, ok := values[i].(string); ok {
			var record capRecord
			if err := json.Unmarshal([]byte(raw), &record); err != nil {
				return nil, ErrInvalidCapData
			}
			prizeCap.Cap = record.Cap
			prizeCap.UpdatedAt = record.UpdatedAt
		}

		caps[prize] = prizeCap
	}

	return caps, nil
}

func (r *repository) SetCap(ctx context.Context, prize string, cap *int64) error {
	record := capRecord{
		Cap:       cap,
		UpdatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return ErrInvalidCapData
	}

	return r.client.Set(ctx, capKeyPrefix+prize, data, 0).Err()
}
