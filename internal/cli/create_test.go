package cli

import (
	"encoding/json"
	"strings"
	"testing"
)

func createArgs(extra ...string) []string {
	args := []string{
		"create",
		"--type", "Commercial",
		"--address", "1 Main St",
		"--price", "250000",
		"--area", "1200",
		"--status", "Available",
		"--amenities", "Pool, Gym",
		"--tenant", "Jane Doe",
		"--contact", "jane@x.com",
		"--rent", "2000",
		"--deposit", "2000",
	}
	return append(args, extra...)
}

func TestCreatePrintsRecord(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := executeCommand(createArgs()...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"Commercial Property:",
		"Price: $250000.0",
		"Area: 1200.0 sqft",
		"Amenities: Pool, Gym",
		"Name: Jane Doe",
		"Rent: $2000.0",
		"Deposit: $2000.0",
		"Payment: Due",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestCreatePaid(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := executeCommand(createArgs("--paid")...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Payment: Paid") {
		t.Error("expected lease marked paid")
	}
	if !strings.Contains(out, "Payment marked as Paid!") {
		t.Error("expected paid notice")
	}
	if strings.Contains(out, "Commercial Property:") {
		t.Error("expected only the tenant after payment")
	}
}

func TestCreateInvalidInput(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	args := createArgs()
	for i, a := range args {
		if a == "--rent" {
			args[i+1] = "abc"
		}
	}

	out, err := executeCommand(args...)
	if err == nil {
		t.Fatal("expected error for non-numeric rent")
	}
	if err.Error() != "Invalid input. Please check your data." {
		t.Errorf("error = %q, want generic notice", err.Error())
	}
	if out != "" {
		t.Errorf("expected no output, got %q", out)
	}
}

func TestCreateRejectsArgs(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := executeCommand("create", "extra"); err == nil {
		t.Fatal("expected error for positional argument")
	}
}

func TestCreateJSON(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := executeCommand(createArgs("--format", "json")...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var rec struct {
		Property struct {
			Kind      string   `json:"kind"`
			Price     float64  `json:"price"`
			Amenities []string `json:"amenities"`
		} `json:"property"`
		Tenant struct {
			Name   string `json:"name"`
			Leases []struct {
				Rent float64 `json:"rent"`
				Paid bool    `json:"paid"`
			} `json:"leases"`
		} `json:"tenant"`
	}
	if err := json.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if rec.Property.Kind != "Commercial" {
		t.Errorf("kind = %q, want Commercial", rec.Property.Kind)
	}
	if len(rec.Property.Amenities) != 2 {
		t.Errorf("amenities = %v, want 2 entries", rec.Property.Amenities)
	}
	if rec.Tenant.Name != "Jane Doe" {
		t.Errorf("tenant = %q, want Jane Doe", rec.Tenant.Name)
	}
	if len(rec.Tenant.Leases) != 1 || rec.Tenant.Leases[0].Paid {
		t.Errorf("leases = %+v, want one unpaid lease", rec.Tenant.Leases)
	}
}
