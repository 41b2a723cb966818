package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stageline.io/stageline/ent"
	"stageline.io/stageline/internal/domain"
)

func invoiceRow(status domain.InvoiceStatus, amount float64, issuedAt *time.Time) *ent.Invoice {
	return &ent.Invoice{
		ID:       domain.NewID(),
		Status:   status,
		Amount:   amount,
		IssuedAt: issuedAt,
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func TestComputeRevenueWindows(t *testing.T) {
	now := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)
	thisMonth := time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)

	invoices := []*ent.Invoice{
		invoiceRow(domain.InvoiceQuote, 100, timePtr(thisMonth)),
		invoiceRow(domain.InvoicePaid, 200, timePtr(thisMonth)),
		invoiceRow(domain.InvoicePaid, 50, timePtr(lastMonth)),
	}

	got := ComputeRevenue(invoices, now)

	require.InDelta(t, 100, got.CurrentMonth.Quoted, 0.001)
	require.InDelta(t, 200, got.CurrentMonth.Paid, 0.001)
	require.Zero(t, got.CurrentMonth.Invoiced)

	require.InDelta(t, 50, got.PreviousMonth.Paid, 0.001)
	require.Zero(t, got.PreviousMonth.Quoted)

	// April: four months elapsed, YTD reported as monthly average.
	require.InDelta(t, 100.0/4, got.YearToDate.Quoted, 0.001)
	require.InDelta(t, 250.0/4, got.YearToDate.Paid, 0.001)
}

func TestComputeRevenueSkipsUnissuedAndIgnoredStatuses(t *testing.T) {
	now := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)
	thisMonth := time.Date(2026, 4, 3, 0, 0, 0, 0, time.UTC)

	invoices := []*ent.Invoice{
		invoiceRow(domain.InvoicePaid, 500, nil),
		invoiceRow(domain.InvoiceDraft, 300, timePtr(thisMonth)),
		invoiceRow(domain.InvoiceCancelled, 400, timePtr(thisMonth)),
		invoiceRow(domain.InvoiceSent, 75, timePtr(thisMonth)),
		invoiceRow(domain.InvoiceOverdue, 25, timePtr(thisMonth)),
	}

	got := ComputeRevenue(invoices, now)
	require.Zero(t, got.CurrentMonth.Paid)
	require.Zero(t, got.CurrentMonth.Quoted)
	require.InDelta(t, 100, got.CurrentMonth.Invoiced, 0.001, "sent and overdue both count as invoiced")
}

func TestComputeRevenueExcludesPriorYears(t *testing.T) {
	now := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	lastYear := time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC)

	got := ComputeRevenue([]*ent.Invoice{
		invoiceRow(domain.InvoicePaid, 900, timePtr(lastYear)),
	}, now)

	require.Zero(t, got.YearToDate.Paid)
	require.Zero(t, got.CurrentMonth.Paid)
	require.Zero(t, got.PreviousMonth.Paid)
}

func TestComputeWinRate(t *testing.T) {
	invoices := []*ent.Invoice{
		invoiceRow(domain.InvoiceQuote, 100, nil),
		invoiceRow(domain.InvoicePaid, 200, nil),
		invoiceRow(domain.InvoicePaid, 50, nil),
		invoiceRow(domain.InvoiceCancelled, 75, nil),
		invoiceRow(domain.InvoiceDraft, 10, nil),
	}

	got := ComputeWinRate(invoices)
	require.Equal(t, 4, got.Quotes, "cancelled drops out of the denominator, draft stays")
	require.Equal(t, 2, got.Paid)
}

func TestComputeWinRateScenarioThreeInvoices(t *testing.T) {
	invoices := []*ent.Invoice{
		invoiceRow(domain.InvoiceQuote, 100, nil),
		invoiceRow(domain.InvoicePaid, 200, nil),
		invoiceRow(domain.InvoicePaid, 50, nil),
	}

	got := ComputeWinRate(invoices)
	require.Equal(t, WinRate{Quotes: 3, Paid: 2}, got)
}
