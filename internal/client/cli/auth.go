package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/acquisitions/internal/common"
)

func (a *App) Register(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return a.fail(err)
	}
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return a.fail(err)
	}
	role, err := GetSimpleText(a.reader, "Enter role (user/admin, empty for user)", a.out)
	if err != nil {
		return a.fail(err)
	}
	if role != "" && !common.ValidRole(role) {
		return a.fail(fmt.Errorf("unknown role %q", role))
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return a.fail(err)
	}
	defer common.WipeByteArray(password)

	user, err := a.api.SignUp(ctx, name, email, password, role)
	if err != nil {
		return a.fail(err)
	}

	a.user = user
	fmt.Fprintf(a.out, "Registered %s (id=%s)\n", user.Email, user.ID)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return a.fail(err)
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return a.fail(err)
	}
	defer common.WipeByteArray(password)

	user, err := a.api.SignIn(ctx, email, password)
	if err != nil {
		return a.fail(err)
	}

	a.user = user
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	s, err := a.api.Me(ctx)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.out, "id=%s email=%s role=%s\n", s.ID, s.Email, s.Role)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.api.SignOut(ctx); err != nil {
		return a.fail(err)
	}
	a.user = nil
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) fail(err error) error {
	fmt.Fprintf(a.out, "error: %v\n", err)
	return err
}
