package cli

import (
	"context"

	"github.com/Sathvik1533/Skillsync/internal/common"
	"github.com/Sathvik1533/Skillsync/internal/models"
)

// Register prompts for the registration form and stores the account.
// Registering replaces any previously registered account.
func (a *App) Register(ctx context.Context) error {
	var req models.RegisterRequest
	var err error

	if req.FirstName, err = getSimpleText(a.reader, "First name", a.out); err != nil {
		return err
	}
	if req.LastName, err = getSimpleText(a.reader, "Last name", a.out); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirmation, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirmation)

	req.Password, req.ConfirmPassword = string(password), string(confirmation)

	if req.AgreeToTerms, err = confirm(a.reader, "Do you agree to the terms and conditions?", a.out); err != nil {
		return err
	}

	if _, err := a.sessions.Register(ctx, req); err != nil {
		return err
	}

	a.success("Registration successful! Type 'login' to sign in.")
	return nil
}

// Login prompts for credentials, starts a session, loads the skills and
// shows the dashboard.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.sessions.Login(ctx, email, string(password))
	if err != nil {
		return err
	}
	a.user = &u

	a.success("Login successful!")

	if err := a.skills.Load(ctx); err != nil {
		return err
	}
	return a.Dashboard(ctx)
}

// Logout ends the session. The account stays registered.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(ctx); err != nil {
		return err
	}
	a.user = nil
	a.success("You have been logged out.")
	return nil
}
