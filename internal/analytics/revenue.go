package analytics

import (
	"time"

	"stageline.io/stageline/ent"
	"stageline.io/stageline/internal/domain"
)

// ComputeRevenue sums invoice amounts per revenue bucket over three windows
// anchored on now: current calendar month, previous calendar month, and a
// year-to-date monthly average. Invoices without an issue date carry no
// recognizable revenue and are skipped.
func ComputeRevenue(invoices []*ent.Invoice, now time.Time) RevenuePerformance {
	now = now.UTC()
	curStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	prevStart := curStart.AddDate(0, -1, 0)
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)

	var current, previous, ytd RevenueBuckets
	for _, inv := range invoices {
		if inv.IssuedAt == nil {
			continue
		}
		issued := inv.IssuedAt.UTC()
		bucket := inv.Status.Bucket()
		if bucket == domain.BucketIgnored {
			continue
		}

		switch {
		case !issued.Before(curStart) && issued.Before(curStart.AddDate(0, 1, 0)):
			addToBucket(&current, bucket, inv.Amount)
		case !issued.Before(prevStart) && issued.Before(curStart):
			addToBucket(&previous, bucket, inv.Amount)
		}
		if !issued.Before(yearStart) && !issued.After(now) {
			addToBucket(&ytd, bucket, inv.Amount)
		}
	}

	// Report YTD as a monthly average so the three periods compare.
	months := float64(int(now.Month()))
	ytd.Quoted /= months
	ytd.Invoiced /= months
	ytd.Paid /= months

	return RevenuePerformance{
		CurrentMonth:  current,
		PreviousMonth: previous,
		YearToDate:    ytd,
	}
}

func addToBucket(b *RevenueBuckets, bucket domain.RevenueBucket, amount float64) {
	switch bucket {
	case domain.BucketQuoted:
		b.Quoted += amount
	case domain.BucketInvoiced:
		b.Invoiced += amount
	case domain.BucketPaid:
		b.Paid += amount
	}
}

// ComputeWinRate counts the win-rate numerator and denominator over all
// in-scope invoices regardless of issue date. Cancelled invoices drop out
// of the denominator entirely.
func ComputeWinRate(invoices []*ent.Invoice) WinRate {
	var wr WinRate
	for _, inv := range invoices {
		if inv.Status.Cancelled() {
			continue
		}
		wr.Quotes++
		if inv.Status.Paid() {
			wr.Paid++
		}
	}
	return wr
}
