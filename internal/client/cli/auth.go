package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/yurin-kami/packchann-client/internal/client/guard"
	"github.com/yurin-kami/packchann-client/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for a student id and password and tries to authenticate.
// On success the restored session is persisted and the user lands on their
// dashboard route.
func (a *App) Login(ctx context.Context) error {
	studentID, err := getSimpleText(a.reader, "Enter student id", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	user, err := a.session.Login(ctx, models.LoginRequest{StudentID: studentID, Password: password})
	if err != nil {
		printlnFn("Login failed:", a.session.Err())
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", user.UserName))
	a.goHome()
	return nil
}

// Register prompts for the account fields and creates a new account. The
// server logs the account in as part of registration, so on success the
// session is established immediately.
func (a *App) Register(ctx context.Context) error {
	req := models.RegisterRequest{}

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter user name", &req.UserName},
		{"Enter student id", &req.StudentID},
		{"Enter phone", &req.Phone},
		{"Enter address (optional)", &req.Address},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, os.Stdout)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	req.Password = password

	user, err := a.session.Register(ctx, req)
	if err != nil {
		printlnFn("Registration failed:", a.session.Err())
		return err
	}

	printlnFn(fmt.Sprintf("Account created. Welcome, %s!", user.UserName))
	a.goHome()
	return nil
}

// Logout drops the session and the persisted snapshot and returns to the
// login route.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	if login, ok := guard.Lookup(guard.RouteLogin); ok {
		a.route = login
	}
	printlnFn("Logged out.")
	return nil
}

// WhoAmI prints the current user record plus the token claims when the
// access token decodes.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}

	printlnFn(fmt.Sprintf("%s (student %s, role %s)", u.UserName, u.StudentID, u.Role))
	printlnFn(fmt.Sprintf("  phone: %s  address: %s", u.Phone, u.Address))

	if claims, err := a.session.Claims(); err == nil {
		printlnFn(fmt.Sprintf("  token: user_id=%s issued by %s", claims.UserID, claims.Issuer))
	}
	return nil
}

// Profile prompts for new profile values and submits the changed ones.
// Empty answers leave the current value in place.
func (a *App) Profile(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}

	req := models.UpdateUserRequest{UserID: u.UserID}

	name, err := getSimpleText(a.reader, fmt.Sprintf("User name [%s]", u.UserName), os.Stdout)
	if err != nil {
		return err
	}
	req.UserName = name

	phone, err := getSimpleText(a.reader, fmt.Sprintf("Phone [%s]", u.Phone), os.Stdout)
	if err != nil {
		return err
	}
	req.Phone = phone

	address, err := getSimpleText(a.reader, fmt.Sprintf("Address [%s]", u.Address), os.Stdout)
	if err != nil {
		return err
	}
	req.Address = address

	if req.UserName == "" && req.Phone == "" && req.Address == "" {
		printlnFn("Nothing to update.")
		return nil
	}

	if _, err := a.session.UpdateProfile(ctx, req); err != nil {
		printlnFn("Update failed:", a.session.Err())
		return err
	}

	printlnFn("Profile updated.")
	return nil
}

// goHome moves the current route to the dashboard matching the session role.
func (a *App) goHome() {
	name := guard.RouteUserDashboard
	if a.isAdmin() {
		name = guard.RouteAdminDashboard
	}
	if r, ok := guard.Lookup(name); ok {
		a.route = r
	}
}
