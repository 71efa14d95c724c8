package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/yurin-kami/packchann-client/internal/client/gateway"
	"github.com/yurin-kami/packchann-client/internal/client/models"
)

// Users lists every account. Admin only; the server rejects the call for
// regular users, this check just saves the round trip.
func (a *App) Users(ctx context.Context) error {
	if !a.isAdmin() {
		printlnFn("Admin only.")
		return nil
	}

	users, err := a.gw.AdminUsers(ctx)
	if err != nil {
		printlnFn("Could not load users:", gateway.ErrorMessage(err, "request failed"))
		return err
	}

	for _, u := range users {
		printlnFn(fmt.Sprintf("#%d  %-16s  student %-12s  %s", u.UserID, u.UserName, u.StudentID, u.Role))
	}
	return nil
}

// AdminPacks lists packages station-wide, optionally filtered by status.
func (a *App) AdminPacks(ctx context.Context, args []string) error {
	if !a.isAdmin() {
		printlnFn("Admin only.")
		return nil
	}

	status := ""
	if len(args) > 0 {
		status = args[0]
		if !models.PackStatus(status).Valid() {
			printlnFn("Unknown status:", status)
			return nil
		}
	}

	list, err := a.gw.AdminPacks(ctx, status)
	if err != nil {
		printlnFn("Could not load packs:", gateway.ErrorMessage(err, "request failed"))
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

// CheckIn registers an arrived package on a shelf for a user.
func (a *App) CheckIn(ctx context.Context) error {
	if !a.isAdmin() {
		printlnFn("Admin only.")
		return nil
	}

	req := models.CheckInRequest{}
	var err error
	if req.PackID, err = promptID(a.reader, "Pack id"); err != nil {
		return err
	}
	if req.UserID, err = promptID(a.reader, "Owner user id"); err != nil {
		return err
	}
	if req.ShelfCode, err = promptID(a.reader, "Shelf code"); err != nil {
		return err
	}

	p, err := a.packs.CheckInPack(ctx, req)
	if err != nil {
		printlnFn("Check-in failed:", a.packs.Err())
		return err
	}

	printlnFn("Checked in:", formatPack(p))
	if p != nil && p.PickupCode != "" {
		printlnFn("  pickup code:", p.PickupCode)
	}
	return nil
}

// SetStatus moves a package to an explicit status.
func (a *App) SetStatus(ctx context.Context, args []string) error {
	if !a.isAdmin() {
		printlnFn("Admin only.")
		return nil
	}

	if len(args) < 2 {
		printlnFn("Usage: setstatus <pack_id> <status>")
		return nil
	}
	id, ok := parseID(args[:1], "Usage: setstatus <pack_id> <status>")
	if !ok {
		return nil
	}
	status := models.PackStatus(args[1])
	if !status.Valid() {
		printlnFn("Unknown status:", args[1])
		return nil
	}

	p, err := a.packs.UpdatePackStatus(ctx, id, status)
	if err != nil {
		printlnFn("Update failed:", a.packs.Err())
		return err
	}

	printlnFn("Updated:", formatPack(p))
	return nil
}

// UpdatePack edits arbitrary fields of a package record. Empty answers
// leave a field untouched.
func (a *App) UpdatePack(ctx context.Context, args []string) error {
	if !a.isAdmin() {
		printlnFn("Admin only.")
		return nil
	}

	id, ok := parseID(args, "Usage: updatepack <pack_id>")
	if !ok {
		return nil
	}
	req := models.AdminUpdatePackRequest{PackID: id}

	if v, err := getSimpleText(a.reader, "New owner user id (empty to keep)", os.Stdout); err != nil {
		return err
	} else if v != "" {
		uid, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			printlnFn("Not a valid user id:", v)
			return nil
		}
		req.UserID = &uid
	}

	if v, err := getSimpleText(a.reader, "New status (empty to keep)", os.Stdout); err != nil {
		return err
	} else if v != "" {
		status := models.PackStatus(v)
		if !status.Valid() {
			printlnFn("Unknown status:", v)
			return nil
		}
		req.Status = &status
	}

	if v, err := getSimpleText(a.reader, "New pickup code (empty to keep)", os.Stdout); err != nil {
		return err
	} else if v != "" {
		req.PickupCode = &v
	}

	p, err := a.gw.AdminUpdatePack(ctx, req)
	if err != nil {
		printlnFn("Update failed:", gateway.ErrorMessage(err, "request failed"))
		return err
	}

	printlnFn("Updated:", formatPack(p))
	return nil
}

// DeleteUser removes an account. Irreversible, so it asks for the id again
// as confirmation.
func (a *App) DeleteUser(ctx context.Context, args []string) error {
	if !a.isAdmin() {
		printlnFn("Admin only.")
		return nil
	}

	id, ok := parseID(args, "Usage: deluser <user_id>")
	if !ok {
		return nil
	}

	confirm, err := getSimpleText(a.reader, fmt.Sprintf("Type %d to confirm deletion", id), os.Stdout)
	if err != nil {
		return err
	}
	if confirm != args[0] {
		printlnFn("Aborted.")
		return nil
	}

	if err := a.gw.AdminDeleteUser(ctx, id); err != nil {
		printlnFn("Delete failed:", gateway.ErrorMessage(err, "request failed"))
		return err
	}

	printlnFn(fmt.Sprintf("User %d deleted.", id))
	return nil
}

func promptID(reader *bufio.Reader, prompt string) (int64, error) {
	v, err := getSimpleText(reader, prompt, os.Stdout)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", v, err)
	}
	return id, nil
}
