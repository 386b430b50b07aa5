// Package form implements the property and lease entry form: it turns raw
// field values into a property, a tenant and a lease, and keeps the most
// recent record and its rendered output.
package form

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/evcraddock/lease-desk/internal/property"
	"github.com/evcraddock/lease-desk/internal/tenant"
)

const (
	// InvalidInputNotice is shown whenever a submission is rejected. It never
	// says which field was wrong.
	InvalidInputNotice = "Invalid input. Please check your data."

	// PaidNotice confirms a payment was recorded.
	PaidNotice = "Payment marked as Paid!"
)

// Fields holds the raw text of every form input.
type Fields struct {
	Type       string `json:"type"`
	Address    string `json:"address"`
	Price      string `json:"price"`
	Area       string `json:"area"`
	Status     string `json:"status"`
	Amenities  string `json:"amenities"`
	TenantName string `json:"tenant_name"`
	Contact    string `json:"contact"`
	Rent       string `json:"rent"`
	Deposit    string `json:"deposit"`
}

// ValidationError reports a field that could not be accepted.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

var (
	errMissing   = errors.New("value is required")
	errNotNumber = errors.New("not a number")
)

// Record is the property and tenant created by the last successful submission.
type Record struct {
	Property *property.Property `json:"property"`
	Tenant   *tenant.Tenant     `json:"tenant"`
}

// Controller owns the form's current record and rendered output.
// It is safe for concurrent use.
type Controller struct {
	mu       sync.Mutex
	now      func() time.Time
	property *property.Property
	tenant   *tenant.Tenant
	lease    *tenant.Lease
	output   string
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock sets the time source used for lease start dates.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

// NewController creates a controller with no current record.
func NewController(opts ...Option) *Controller {
	c := &Controller{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Create builds a new property, tenant and one-year lease from f and makes
// them the current record, replacing any earlier one. It returns the new
// output. On a *ValidationError the current record and output are untouched.
func (c *Controller) Create(f Fields) (string, error) {
	p, t, l, err := c.build(f)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			slog.Warn("rejected submission", "field", ve.Field, "error", ve.Err)
		}
		return "", err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.property, c.tenant, c.lease = p, t, l
	c.output = p.Describe() + "\n\n" + t.Describe()

	slog.Info("created lease",
		"kind", p.Kind,
		"address", p.Address,
		"tenant", t.Name,
		"end", l.End.Format(tenant.DateLayout),
	)
	return c.output, nil
}

// MarkPaid records payment on the current lease and re-renders the tenant.
// It reports false, changing nothing, when no lease exists yet.
func (c *Controller) MarkPaid() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.lease == nil {
		return c.output, false
	}

	c.lease.MarkPaid()
	c.output = c.tenant.Describe()

	slog.Info("lease payment recorded", "tenant", c.tenant.Name)
	return c.output, true
}

// Output returns the most recently rendered description, or "" before the
// first successful submission.
func (c *Controller) Output() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.output
}

// Current returns the current record, or nil before the first successful submission.
func (c *Controller) Current() *Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.property == nil {
		return nil
	}
	return &Record{Property: c.property, Tenant: c.tenant}
}

func (c *Controller) build(f Fields) (*property.Property, *tenant.Tenant, *tenant.Lease, error) {
	kind, err := property.ParseKind(f.Type)
	if err != nil {
		return nil, nil, nil, &ValidationError{Field: "type", Err: err}
	}

	address, err := requireText("address", f.Address)
	if err != nil {
		return nil, nil, nil, err
	}
	price, err := parseAmount("price", f.Price)
	if err != nil {
		return nil, nil, nil, err
	}
	area, err := parseAmount("area", f.Area)
	if err != nil {
		return nil, nil, nil, err
	}
	status, err := requireText("status", f.Status)
	if err != nil {
		return nil, nil, nil, err
	}
	name, err := requireText("tenant name", f.TenantName)
	if err != nil {
		return nil, nil, nil, err
	}
	contact, err := requireText("contact", f.Contact)
	if err != nil {
		return nil, nil, nil, err
	}
	rent, err := parseAmount("rent", f.Rent)
	if err != nil {
		return nil, nil, nil, err
	}
	deposit, err := parseAmount("deposit", f.Deposit)
	if err != nil {
		return nil, nil, nil, err
	}

	p := &property.Property{
		Kind:      kind,
		Address:   address,
		Price:     price,
		Area:      area,
		Status:    status,
		Amenities: property.ParseAmenities(f.Amenities),
	}

	l := tenant.NewLease(c.now(), rent, deposit)
	t := tenant.New(name, contact)
	t.AddLease(l)

	return p, t, l, nil
}

// requireText treats a blank value as an absent field.
func requireText(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", &ValidationError{Field: field, Err: errMissing}
	}
	return s, nil
}

// parseAmount parses a finite decimal. Sign and magnitude are not checked.
func parseAmount(field, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &ValidationError{Field: field, Err: errMissing}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ValidationError{Field: field, Err: errNotNumber}
	}
	return v, nil
}
