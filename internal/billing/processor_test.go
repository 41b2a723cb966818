package billing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"stageline.io/stageline/ent"
	"stageline.io/stageline/internal/domain"
	"stageline.io/stageline/internal/testutil"
)

func invoiceRow(status domain.InvoiceStatus, amount float64) *ent.Invoice {
	return &ent.Invoice{Status: status, Amount: amount}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	sum := summarize([]*ent.Invoice{
		invoiceRow(domain.InvoicePaid, 1000),
		invoiceRow(domain.InvoicePaid, 250.50),
		invoiceRow(domain.InvoiceSent, 400),
		invoiceRow(domain.InvoiceOverdue, 90),
		invoiceRow(domain.InvoiceQuote, 5000),
		invoiceRow(domain.InvoiceDraft, 10),
		invoiceRow(domain.InvoiceCancelled, 75),
	})

	require.Equal(t, 7, sum.Total)
	require.Equal(t, 2, sum.PaidCount)
	require.Equal(t, 2, sum.OpenCount)
	require.InDelta(t, 1250.50, sum.PaidTotal, 0.001)
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()
	require.Equal(t, ledgerSummary{}, summarize(nil))
}

func TestReconcileScopesToTenant(t *testing.T) {
	client := testutil.OpenEntPostgres(t, "billing_reconcile")
	p := NewLedgerProcessor(client)

	seedInvoice := func(tenant string, status domain.InvoiceStatus) {
		org := client.ClientOrg.Create().
			SetID(domain.NewID()).
			SetTenantAccountID(tenant).
			SetName("Org").
			SaveX(t.Context())
		proj := client.Project.Create().
			SetID(domain.NewID()).
			SetName("Proj").
			SetClientID(org.ID).
			SetTenantAccountID(tenant).
			SetStatus(domain.StatusBuild).
			SaveX(t.Context())
		client.Invoice.Create().
			SetID(domain.NewID()).
			SetProjectID(proj.ID).
			SetStatus(status).
			SetAmount(100).
			SaveX(t.Context())
	}

	seedInvoice("acct_a", domain.InvoicePaid)
	seedInvoice("acct_b", domain.InvoiceSent)

	require.NoError(t, p.Reconcile(context.Background(), "acct_a"))
	require.NoError(t, p.Reconcile(context.Background(), "acct_missing"))
}
