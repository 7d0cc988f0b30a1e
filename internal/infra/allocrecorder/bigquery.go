//go:build gcloud

package allocrecorder

import (
	"context"
	"log/slog"
	"time"

	"cloud.google.com/go/bigquery"

	"github.com/KasumiMercury/tombola-prize-allocation/internal/domain"
)

type bigQueryRecord struct {
	RecordedAt time.Time `bigquery:"recorded_at"`
	EntryID    string    `bigquery:"entry_id"`
	Prize      string    `bigquery:"prize"`
	Day        string    `bigquery:"day"`
	Already    bool      `bigquery:"already"`
	GrantedAt  time.Time `bigquery:"granted_at"`
}

type bigQueryRecorder struct {
	client   *bigquery.Client
	inserter *bigquery.Inserter
	dataset  string
	table    string
}

func NewRecorder(ctx context.Context, cfg *Config) (domain.AllocationRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "allocation record shipping disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.BigQueryProjectID == "" {
		slog.WarnContext(ctx, "BigQuery project ID not configured, allocation record shipping disabled")
		return NewNoopRecorder(), nil
	}

	client, err := bigquery.NewClient(ctx, cfg.BigQueryProjectID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create BigQuery client, allocation record shipping disabled",
			slog.String("error", err.Error()),
			slog.String("project_id", cfg.BigQueryProjectID),
		)
		return NewNoopRecorder(), nil
	}

	table := client.Dataset(cfg.BigQueryDataset).Table(cfg.BigQueryTable)
	inserter := table.Inserter()

	slog.InfoContext(ctx, "allocation recorder initialized",
		slog.String("type", "bigquery"),
		slog.String("project_id", cfg.BigQueryProjectID),
		slog.String("dataset", cfg.BigQueryDataset),
		slog.String("table", cfg.BigQueryTable),
	)

	return &bigQueryRecorder{
		client:   client,
		inserter: inserter,
		dataset:  cfg.BigQueryDataset,
		table:    cfg.BigQueryTable,
	}, nil
}

func (r *bigQueryRecorder) RecordAllocation(ctx context.Context, record domain.AllocationRecord) error {
	row := &bigQueryRecord{
		RecordedAt: time.Now(),
		EntryID:    record.EntryID,
		Prize:      record.Prize,
		Day:        record.Day,
		Already:    record.Already,
		GrantedAt:  record.GrantedAt,
	}

	if err := r.inserter.Put(ctx, row); err != nil {
		slog.WarnContext(ctx, "failed to insert allocation record to BigQuery",
			slog.String("error", err.Error()),
			slog.String("prize", record.Prize),
			slog.String("day", record.Day),
		)
	}

	return nil
}

func (r *bigQueryRecorder) Flush(ctx context.Context) error {
	return nil
}

func (r *bigQueryRecorder) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}
