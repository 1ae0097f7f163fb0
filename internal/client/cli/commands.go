package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/schoolplatform/internal/client/models"
	"github.com/dmitrijs2005/schoolplatform/internal/client/services"
	"github.com/dmitrijs2005/schoolplatform/internal/client/session"
	"github.com/dmitrijs2005/schoolplatform/internal/common"
)

// displayMessage returns the text shown for a failed command.
func displayMessage(err error) string {
	var fe formError
	switch {
	case errors.As(err, &fe):
		return fe.Error()
	case errors.Is(err, session.ErrNotLoggedIn):
		return "User not logged in"
	case errors.Is(err, common.ErrUnavailable):
		return "Server unavailable, please try again later"
	default:
		return services.Message(err)
	}
}

func (a *App) report(ctx context.Context, cmd string, err error) error {
	a.logger.Debug(ctx, "command failed", "command", cmd, "error", err)
	printlnFn(displayMessage(err))
	return err
}

// Register prompts for name, email and password, creates the account and
// signs it in.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := validateRegistration(name, email, string(password)); err != nil {
		return a.report(ctx, "register", err)
	}

	u, err := a.manager.Register(ctx, name, email, string(password))
	if err != nil {
		return a.report(ctx, "register", err)
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", u.Name))
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := validateLogin(email, string(password)); err != nil {
		return a.report(ctx, "login", err)
	}

	u, err := a.manager.Login(ctx, email, string(password))
	if err != nil {
		return a.report(ctx, "login", err)
	}

	printlnFn(fmt.Sprintf("Welcome back, %s!", u.Name))
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.manager.Logout(ctx); err != nil {
		return a.report(ctx, "logout", err)
	}
	printlnFn("Logged out")
	return nil
}

// WhoAmI prints the signed-in user.
func (a *App) WhoAmI(_ context.Context) error {
	st := a.manager.State()
	if !st.IsAuthenticated() {
		printlnFn("Not logged in")
		return nil
	}

	u := st.User
	printlnFn(fmt.Sprintf("%s <%s>", u.Name, u.Email))
	printlnFn(fmt.Sprintf("ID: %s", u.ID))
	printlnFn(fmt.Sprintf("Member since: %s", u.CreatedAt.Local().Format("2006-01-02")))
	return nil
}

// Profile edits name and email. Each prompt shows the current value; an
// empty answer keeps it.
func (a *App) Profile(ctx context.Context) error {
	st := a.manager.State()
	if !st.IsAuthenticated() {
		return a.report(ctx, "profile", session.ErrNotLoggedIn)
	}

	name, err := getSimpleText(a.reader, fmt.Sprintf("Name [%s]", st.User.Name), a.out)
	if err != nil {
		return err
	}
	if name == "" {
		name = st.User.Name
	}

	email, err := getSimpleText(a.reader, fmt.Sprintf("Email [%s]", st.User.Email), a.out)
	if err != nil {
		return err
	}
	if email == "" {
		email = st.User.Email
	}

	if err := validateProfile(name, email); err != nil {
		return a.report(ctx, "profile", err)
	}

	if _, err := a.manager.UpdateProfile(ctx, models.ProfileUpdate{Name: &name, Email: &email}); err != nil {
		return a.report(ctx, "profile", err)
	}

	printlnFn("Profile updated successfully!")
	return nil
}

// Passwd changes the password of the signed-in user.
func (a *App) Passwd(ctx context.Context) error {
	if !a.isLoggedIn() {
		return a.report(ctx, "passwd", session.ErrNotLoggedIn)
	}

	current, err := getPassword(a.reader, "Current password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	next, err := getPassword(a.reader, "New password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(next)

	confirm, err := getPassword(a.reader, "Confirm new password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if err := validatePasswordChange(string(current), string(next), string(confirm)); err != nil {
		return a.report(ctx, "passwd", err)
	}

	if err := a.manager.ChangePassword(ctx, string(current), string(next)); err != nil {
		return a.report(ctx, "passwd", err)
	}

	printlnFn("Password changed successfully!")
	return nil
}
