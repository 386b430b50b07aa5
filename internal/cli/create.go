package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evcraddock/lease-desk/internal/form"
)

func newCreateCmd() *cobra.Command {
	var (
		f    form.Fields
		paid bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a property, tenant and lease",
		Long:  "Create a property and a tenant holding a one-year lease starting today, then print them. Use --paid to mark the lease payment as paid.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, form.NewController(), f, paid)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.Type, "type", "Residential", "property type (Residential|Commercial)")
	flags.StringVar(&f.Address, "address", "", "property address")
	flags.StringVar(&f.Price, "price", "", "price in dollars")
	flags.StringVar(&f.Area, "area", "", "area in square feet")
	flags.StringVar(&f.Status, "status", "", "listing status, e.g. Available")
	flags.StringVar(&f.Amenities, "amenities", "", "comma-separated amenities")
	flags.StringVar(&f.TenantName, "tenant", "", "tenant name")
	flags.StringVar(&f.Contact, "contact", "", "tenant contact info")
	flags.StringVar(&f.Rent, "rent", "", "rent amount")
	flags.StringVar(&f.Deposit, "deposit", "", "deposit amount")
	flags.BoolVar(&paid, "paid", false, "mark the lease payment as paid")

	return cmd
}

func runCreate(cmd *cobra.Command, ctrl *form.Controller, f form.Fields, paid bool) error {
	out, err := ctrl.Create(f)
	if err != nil {
		var ve *form.ValidationError
		if errors.As(err, &ve) {
			return errors.New(form.InvalidInputNotice)
		}
		return fmt.Errorf("creating lease: %w", err)
	}

	if paid {
		var ok bool
		if out, ok = ctrl.MarkPaid(); !ok {
			return errors.New("no lease to mark as paid")
		}
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), ctrl.Current())
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	if paid {
		fmt.Fprintln(cmd.OutOrStdout(), form.PaidNotice)
	}
	return nil
}
