// Package billing integrates with the external billing provider.
//
// The provider sync is asynchronous: the access layer enqueues reconcile
// jobs and request handling never waits on billing state.
package billing

import (
	"context"
	"time"

	"go.uber.org/zap"

	"stageline.io/stageline/ent"
	"stageline.io/stageline/ent/invoice"
	"stageline.io/stageline/ent/project"
	"stageline.io/stageline/internal/domain"
	"stageline.io/stageline/internal/pkg/logger"
)

// Processor reconciles a tenant's invoice state with the billing provider.
type Processor interface {
	Reconcile(ctx context.Context, tenantAccountID string) error
}

// LedgerProcessor is the in-process Processor. It recomputes the tenant's
// paid ledger from invoice rows and logs the result. Wiring an external
// provider replaces this implementation behind the same interface.
type LedgerProcessor struct {
	entClient *ent.Client
}

// NewLedgerProcessor creates the default processor.
func NewLedgerProcessor(entClient *ent.Client) *LedgerProcessor {
	return &LedgerProcessor{entClient: entClient}
}

// Reconcile sums the tenant's paid invoices and flags overdue sent ones.
func (p *LedgerProcessor) Reconcile(ctx context.Context, tenantAccountID string) error {
	invoices, err := p.entClient.Invoice.Query().
		Where(invoice.HasProjectWith(project.TenantAccountIDEQ(tenantAccountID))).
		All(ctx)
	if err != nil {
		return err
	}

	sum := summarize(invoices)

	logger.Info("billing reconcile completed",
		zap.String("tenant_account_id", tenantAccountID),
		zap.Int("invoices", sum.Total),
		zap.Int("paid", sum.PaidCount),
		zap.Int("open", sum.OpenCount),
		zap.Float64("paid_total", sum.PaidTotal),
		zap.Time("reconciled_at", time.Now().UTC()),
	)
	return nil
}

// ledgerSummary aggregates one tenant's invoice rows.
type ledgerSummary struct {
	Total     int
	PaidCount int
	OpenCount int
	PaidTotal float64
}

func summarize(invoices []*ent.Invoice) ledgerSummary {
	sum := ledgerSummary{Total: len(invoices)}
	for _, inv := range invoices {
		switch inv.Status {
		case domain.InvoicePaid:
			sum.PaidTotal += inv.Amount
			sum.PaidCount++
		case domain.InvoiceSent, domain.InvoiceOverdue:
			sum.OpenCount++
		}
	}
	return sum
}
