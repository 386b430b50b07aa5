package tenant

import (
	"strings"
	"time"

	"github.com/evcraddock/lease-desk/internal/property"
)

// DateLayout is the day-month-year layout used for lease dates.
const DateLayout = "02-01-2006"

// PaymentStatus is the rendered form of a lease's payment flag.
type PaymentStatus string

const (
	PaymentDue  PaymentStatus = "Due"
	PaymentPaid PaymentStatus = "Paid"
)

// Lease is a one-year rental agreement. Paid starts false and only ever
// moves to true.
type Lease struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Rent    float64   `json:"rent"`
	Deposit float64   `json:"deposit"`
	Paid    bool      `json:"paid"`
}

// NewLease creates an unpaid lease running one year from start.
func NewLease(start time.Time, rent, deposit float64) *Lease {
	return &Lease{
		Start:   start,
		End:     addYear(start),
		Rent:    rent,
		Deposit: deposit,
	}
}

// MarkPaid records the payment. Calling it again has no further effect.
func (l *Lease) MarkPaid() {
	l.Paid = true
}

// Status reports the payment flag as Due or Paid.
func (l *Lease) Status() PaymentStatus {
	if l.Paid {
		return PaymentPaid
	}
	return PaymentDue
}

// Describe renders the lease as labelled lines.
func (l *Lease) Describe() string {
	var b strings.Builder
	b.WriteString("Lease:\n")
	b.WriteString("Start: " + l.Start.Format(DateLayout) + "\n")
	b.WriteString("End: " + l.End.Format(DateLayout) + "\n")
	b.WriteString("Rent: $" + property.FormatAmount(l.Rent) + "\n")
	b.WriteString("Deposit: $" + property.FormatAmount(l.Deposit) + "\n")
	b.WriteString("Payment: " + string(l.Status()))
	return b.String()
}

// addYear moves t forward one calendar year. A Feb 29 start lands on Feb 28
// rather than rolling over into March.
func addYear(t time.Time) time.Time {
	end := t.AddDate(1, 0, 0)
	if end.Month() != t.Month() {
		end = end.AddDate(0, 0, -end.Day())
	}
	return end
}
