package domain

// InvoiceStatus is one value of the invoice lifecycle. Invoices are mutated
// by billing workflows outside this core; analytics only reads them.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceQuote     InvoiceStatus = "quote"
	InvoiceSent      InvoiceStatus = "sent"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// RevenueBucket groups invoice statuses for revenue reporting.
type RevenueBucket string

const (
	BucketQuoted   RevenueBucket = "quoted"
	BucketInvoiced RevenueBucket = "invoiced"
	BucketPaid     RevenueBucket = "paid"
	BucketIgnored  RevenueBucket = "ignored"
)

// Values implements field.EnumValues for ent codegen.
func (InvoiceStatus) Values() []string {
	return []string{
		string(InvoiceDraft),
		string(InvoiceQuote),
		string(InvoiceSent),
		string(InvoiceOverdue),
		string(InvoicePaid),
		string(InvoiceCancelled),
	}
}

// String returns the raw enum value.
func (s InvoiceStatus) String() string { return string(s) }

// Bucket maps an invoice status onto its revenue bucket. Draft and cancelled
// invoices carry no revenue; cancelled additionally drops out of the win-rate
// denominator (see Cancelled).
func (s InvoiceStatus) Bucket() RevenueBucket {
	switch s {
	case InvoiceQuote:
		return BucketQuoted
	case InvoiceSent, InvoiceOverdue:
		return BucketInvoiced
	case InvoicePaid:
		return BucketPaid
	default:
		return BucketIgnored
	}
}

// Cancelled reports whether the invoice dropped out of the pipeline entirely.
func (s InvoiceStatus) Cancelled() bool { return s == InvoiceCancelled }

// Paid reports whether the invoice has been settled.
func (s InvoiceStatus) Paid() bool { return s == InvoicePaid }
