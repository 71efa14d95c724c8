package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/yurin-kami/packchann-client/internal/client/models"
)

// ListPacks fetches and prints the current user's packages.
func (a *App) ListPacks(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}

	list, err := a.packs.FetchUserPacks(ctx, u.UserID)
	if err != nil {
		printlnFn("Could not load packages:", a.packs.Err())
		return err
	}

	if len(list) == 0 {
		printlnFn("No packages.")
		return nil
	}
	for _, p := range list {
		printlnFn(formatPack(&p))
	}
	return nil
}

// ShowPack fetches and prints full details of a single package.
func (a *App) ShowPack(ctx context.Context, args []string) error {
	id, ok := parseID(args, "Usage: pack <pack_id>")
	if !ok {
		return nil
	}

	p, err := a.packs.FetchPackDetails(ctx, id)
	if err != nil {
		printlnFn("Could not load package:", a.packs.Err())
		return err
	}
	if p == nil {
		printlnFn("<none>")
		return nil
	}

	printlnFn(formatPack(p))
	if p.PickupCode != "" {
		printlnFn(fmt.Sprintf("  pickup code: %s  shelf: %d", p.PickupCode, p.ShelfCode))
	}
	if p.Recipient != "" {
		printlnFn(fmt.Sprintf("  to %s (%s), %s", p.Recipient, p.RecipientPhone, p.ReceivingAddr))
	}
	return nil
}

// Checkout collects a pending package for the current user.
func (a *App) Checkout(ctx context.Context, args []string) error {
	u := a.session.User()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}

	id, ok := parseID(args, "Usage: checkout <pack_id>")
	if !ok {
		return nil
	}

	p, err := a.packs.CheckOutPack(ctx, id, u.UserID)
	if err != nil {
		printlnFn("Checkout failed:", a.packs.Err())
		return err
	}

	printlnFn("Checked out:", formatPack(p))
	return nil
}

// Mail prompts for the shipping fields and creates an outbound mail pack.
func (a *App) Mail(ctx context.Context) error {
	req := models.MailPackRequest{}

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Shipping address (from)", &req.ShippingAddress},
		{"Recipient name", &req.Recipient},
		{"Receiving address (to)", &req.ReceivingAddr},
		{"Shipper phone", &req.ShipperPhone},
		{"Recipient phone", &req.RecipientPhone},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	p, err := a.packs.CreateMailPack(ctx, req)
	if err != nil {
		printlnFn("Could not create mail pack:", a.packs.Err())
		return err
	}

	printlnFn("Mail pack created:", formatPack(p))
	return nil
}

// CancelMail cancels an in-transit mail pack owned by the current user.
func (a *App) CancelMail(ctx context.Context, args []string) error {
	u := a.session.User()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}

	id, ok := parseID(args, "Usage: cancelmail <pack_id>")
	if !ok {
		return nil
	}

	if _, err := a.packs.CancelMailPack(ctx, id, u.UserID); err != nil {
		printlnFn("Cancel failed:", a.packs.Err())
		return err
	}

	printlnFn(fmt.Sprintf("Mail pack %d cancelled.", id))
	return nil
}

func formatPack(p *models.Pack) string {
	if p == nil {
		return "<none>"
	}
	return fmt.Sprintf("#%d  %-11s  owner %d", p.PackID, p.Status, p.UserID)
}

// parseID extracts a positive int64 id from the first argument, printing
// usage on any problem.
func parseID(args []string, usage string) (int64, bool) {
	if len(args) == 0 {
		printlnFn(usage)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		printlnFn(usage)
		return 0, false
	}
	return id, true
}
