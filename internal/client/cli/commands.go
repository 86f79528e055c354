package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gophstore/internal/client/client"
	"github.com/dmitrijs2005/gophstore/internal/client/models"
	"github.com/dmitrijs2005/gophstore/internal/client/navigation"
	"github.com/dmitrijs2005/gophstore/internal/common"
)

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) report(err error) {
	if errors.Is(err, client.ErrUnavailable) {
		a.println("Server is unavailable, try again later")
		return
	}
	a.println("Error:", err)

	for _, known := range []error{
		common.ErrorValidation, common.ErrorNotFound, common.ErrorAlreadyExists, common.ErrorUnauthorized,
	} {
		if errors.Is(err, known) {
			return
		}
	}
	a.log.Error(context.Background(), "command failed", "error", err)
}

func (a *App) Register(ctx context.Context) error {
	if a.route() != navigation.RouteRegister {
		a.nav.Push(navigation.RouteRegister)
	}

	var r models.Registration
	var err error
	if r.Email, err = GetSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	pw, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	r.Password = string(pw)
	common.WipeByteArray(pw)

	if r.Name, err = GetSimpleText(a.reader, "Name", a.out); err != nil {
		return err
	}
	if r.Degree, err = GetSimpleText(a.reader, "Degree", a.out); err != nil {
		return err
	}
	if r.GradYear, err = GetOptionalInt(a.reader, "Graduation year", a.out); err != nil {
		a.report(fmt.Errorf("%w: graduation year %v", common.ErrorValidation, err))
		return err
	}

	if _, err := a.sessions.Register(ctx, r); err != nil {
		a.report(err)
		return err
	}

	a.nav.Reset(navigation.RouteLogin)
	a.println("Account created. Please log in.")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	pw, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)

	s, err := a.sessions.SignIn(ctx, email, string(pw))
	if err != nil {
		a.report(err)
		return err
	}

	a.nav.Reset(navigation.RouteMain)
	a.println("Signed in as", s.Email)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	err := a.sessions.SignOut(ctx)
	a.nav.Reset(navigation.RouteLogin)
	if err != nil {
		a.report(err)
		return err
	}
	a.println("Signed out")
	return nil
}

func (a *App) Add(ctx context.Context) error {
	if a.route() != navigation.RouteAdd {
		a.nav.Push(navigation.RouteAdd)
	}

	a.mu.Lock()
	form := a.form
	a.mu.Unlock()

	var err error
	if form.Name, err = GetWithDefault(a.reader, "Name", form.Name, a.out); err != nil {
		return err
	}
	if form.Price, err = GetWithDefault(a.reader, "Price", form.Price, a.out); err != nil {
		return err
	}
	if form.ImagePath, err = GetWithDefault(a.reader, "Image file (optional)", form.ImagePath, a.out); err != nil {
		return err
	}

	id, err := a.writer.Submit(ctx, &form)

	a.mu.Lock()
	a.form = form
	a.mu.Unlock()

	if err != nil {
		a.report(err)
		a.println("Fix the form with 'add' or leave with 'back'")
		return err
	}

	a.println("Product saved:", id)
	a.nav.Back()
	return nil
}

func (a *App) List(ctx context.Context) error {
	area := a.mounted()
	if area == nil {
		a.println("Product list is not available")
		return nil
	}

	if err := area.feed.Err(); err != nil {
		a.println("Live updates interrupted, retrying:", err)
	}

	items := area.feed.Items()
	if len(items) == 0 {
		a.println("No products yet")
		return nil
	}

	for _, p := range items {
		state := "for sale"
		if p.Sold {
			state = "sold"
		}
		line := fmt.Sprintf("%s  %-24s %10.2f  %-8s %s", p.ID, p.Name, p.Price, state, p.CreatedAt.Local().Format("2006-01-02 15:04"))
		if p.ImageRef != "" {
			line += "  [image]"
		}
		a.println(line)
	}
	return nil
}

func (a *App) Sold(ctx context.Context, id string) error {
	if err := a.writer.MarkSold(ctx, id); err != nil {
		a.report(err)
		return err
	}
	a.println("Marked as sold:", id)
	return nil
}

// Profile shows the profile loaded for this mount. A failed load is
// retried on request.
func (a *App) Profile(ctx context.Context) error {
	area := a.mounted()
	if area == nil {
		a.println("Profile is not available")
		return nil
	}

	r := area.getProfile()
	if r == nil {
		a.println("Loading profile...")
		return nil
	}
	if !r.OK() {
		a.println("Could not load profile, retrying...")
		res := a.profiles.Load(ctx, area.session)
		area.setProfile(res)
		r = &res
		if !r.OK() {
			a.report(r.Err)
			return r.Err
		}
	}

	p := r.Profile
	a.println("Name:           ", p.Name)
	a.println("Email:          ", p.Email)
	if p.Degree != "" {
		a.println("Degree:         ", p.Degree)
	}
	if p.GradYear != 0 {
		a.println("Graduation year:", p.GradYear)
	}
	return nil
}

func (a *App) EditProfile(ctx context.Context) error {
	area := a.mounted()
	if area == nil {
		a.println("Profile is not available")
		return nil
	}
	if a.route() != navigation.RouteEditProfile {
		a.nav.Push(navigation.RouteEditProfile)
	}

	var cur models.Profile
	if r := area.getProfile(); r != nil && r.OK() {
		cur = *r.Profile
	}

	name, err := GetWithDefault(a.reader, "Name", cur.Name, a.out)
	if err != nil {
		return err
	}
	degree, err := GetWithDefault(a.reader, "Degree", cur.Degree, a.out)
	if err != nil {
		return err
	}
	year, err := GetOptionalInt(a.reader, "Graduation year (empty keeps current)", a.out)
	if err != nil {
		a.report(fmt.Errorf("%w: graduation year %v", common.ErrorValidation, err))
		return err
	}

	if err := a.profiles.Save(ctx, name, degree, year); err != nil {
		a.report(err)
		return err
	}

	area.setProfile(a.profiles.Load(ctx, area.session))
	a.println("Profile updated")
	a.nav.Back()
	return nil
}

func (a *App) Back(ctx context.Context) error {
	if !a.nav.Back() {
		a.println("Nothing to go back to")
	}
	return nil
}

func help(r navigation.Route) string {
	cmds := commandsFor(r)
	return "Available commands: " + strings.Join(cmds, ", ")
}
