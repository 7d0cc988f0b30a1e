package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/KasumiMercury/tombola-prize-allocation/internal/domain"
)

var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrConsentRequired      = errors.New("consent is required")
)

// Input carries the registration form. Intermediary and Zone are
// optional; everything else is required, and Consent must be true.
type Input struct {
	Name             string
	Phone            string
	ExpiryMonth      string
	InsuranceCompany string
	City             string
	District         string
	Intermediary     string
	Zone             string
	Consent          bool
}

type Service struct {
	ledger domain.AllocationLedger
}

func NewService(ledger domain.AllocationLedger) *Service {
	return &Service{ledger: ledger}
}

// Register validates the form, assigns the entry its id and persists
// it. The returned id is what the participant later spins with.
func (s *Service) Register(ctx context.Context, input Input) (string, error) {
	if err := validate(input); err != nil {
		return "", err
	}

	entry := &domain.Entry{
		ID:               uuid.NewString(),
		Name:             strings.TrimSpace(input.Name),
		Phone:            strings.TrimSpace(input.Phone),
		ExpiryMonth:      strings.TrimSpace(input.ExpiryMonth),
		InsuranceCompany: strings.TrimSpace(input.InsuranceCompany),
		City:             strings.TrimSpace(input.City),
		District:         strings.TrimSpace(input.District),
		Intermediary:     strings.TrimSpace(input.Intermediary),
		Zone:             strings.TrimSpace(input.Zone),
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.ledger.CreateEntry(ctx, entry); err != nil {
		return "", fmt.Errorf("create entry: %w", err)
	}

	slog.InfoContext(ctx, "entry registered",
		slog.String("entry_id", entry.ID),
		slog.String("city", entry.City),
	)

	return entry.ID, nil
}

func validate(input Input) error {
	required := map[string]string{
		"name":              input.Name,
		"phone":             input.Phone,
		"expiry_month":      input.ExpiryMonth,
		"insurance_company": input.InsuranceCompany,
		"city":              input.City,
		"district":          input.District,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingRequiredField, field)
		}
	}
	if !input.Consent {
		return ErrConsentRequired
	}
	return nil
}
