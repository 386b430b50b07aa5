// Package tenant provides tenants and the leases they hold.
package tenant

import "strings"

// Person is anyone with a name and a way to reach them.
type Person struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
}

// Describe renders the person's name and contact lines.
func (p Person) Describe() string {
	return "Name: " + p.Name + "\nContact Info: " + p.Contact
}

// Tenant is a person renting under one or more leases, held in signing order.
type Tenant struct {
	Person
	Leases []*Lease `json:"leases"`
}

// New creates a tenant with no leases.
func New(name, contact string) *Tenant {
	return &Tenant{
		Person: Person{Name: name, Contact: contact},
		Leases: []*Lease{},
	}
}

// AddLease appends a lease to the tenant.
func (t *Tenant) AddLease(l *Lease) {
	t.Leases = append(t.Leases, l)
}

// Describe renders the tenant followed by each lease, separated by blank lines.
func (t *Tenant) Describe() string {
	var b strings.Builder
	b.WriteString("Tenant:\n")
	b.WriteString(t.Person.Describe())
	for _, l := range t.Leases {
		b.WriteString("\n\n")
		b.WriteString(l.Describe())
	}
	return b.String()
}
