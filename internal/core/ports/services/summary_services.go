package services

import (
	"context"
	"time"

	"github.com/famstack/family_account_app/internal/core/domain"
)

// SummarySvcFacade defines the multi-currency summary computation.
type SummarySvcFacade interface {
	// GetSummary computes period and all-time totals for the inclusive date
	// range [periodStart, periodEnd]. All-or-nothing: an unresolvable
	// currency anywhere in the ledger aborts the whole summary.
	GetSummary(ctx context.Context, periodStart, periodEnd time.Time) (*domain.Summary, error)
}
