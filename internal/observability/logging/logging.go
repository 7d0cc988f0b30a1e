package logging

import (
	"context"
	"log/slog"
	"os"
)

// Environment selects the log output format.
type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

// Module tags every log line with the emitting subsystem.
type Module string

// ServiceInfo identifies the running binary in logs and traces.
type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type handler struct {
	slog.Handler
	module Module
}

// NewHandler builds the process-wide slog handler: human-readable text
// in dev, JSON elsewhere, with platform trace attributes appended when
// available.
func NewHandler(env Environment, level slog.Level, module Module) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}

	var inner slog.Handler
	if env == EnvDev {
		inner = slog.NewTextHandler(os.Stdout, opts)
	} else {
		inner = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &handler{Handler: inner, module: module}
}

func (h *handler) Handle(ctx context.Context, record slog.Record) error {
	record.AddAttrs(slog.String("module", string(h.module)))
	if attrs := gcpTraceAttrs(ctx, ""); len(attrs) > 0 {
		record.AddAttrs(attrs...)
	}
	return h.Handler.Handle(ctx, record)
}
