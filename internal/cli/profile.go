package cli

import (
	"context"
	"fmt"

	"github.com/utender/utender-cli/internal/api"
	"github.com/utender/utender-cli/internal/models"
)

// Profile fetches and prints the member profile.
func (a *App) Profile(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	u, err := a.session.Profile(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load profile:", err)
		return err
	}
	a.renderProfile(u)
	return nil
}

func (a *App) renderProfile(u *models.User) {
	fmt.Fprintln(a.out, "Username:     ", u.Username)
	fmt.Fprintln(a.out, "Email:        ", u.Email)
	fmt.Fprintln(a.out, "Name:         ", u.FirstName, u.LastName)
	fmt.Fprintln(a.out, "Company:      ", u.Company)
	fmt.Fprintln(a.out, "Fiscal number:", u.FiscalNumber)
	fmt.Fprintln(a.out, "Phone:        ", u.Phone)
	fmt.Fprintln(a.out, "Address:      ", u.Address)
	fmt.Fprintln(a.out, "Categories:   ", u.Categories())
	if u.PackageName != "" {
		fmt.Fprintf(a.out, "Package:       %s (expires %s)\n", u.PackageName, formatDate(u.PackageExpiry))
	}
}

// SaveInfo edits and saves the personal-information section. It is an
// independent save from SaveCategories: the two hit the same endpoint with
// disjoint fields so one cannot clobber the other's unsaved edits.
func (a *App) SaveInfo(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	current, err := a.session.Profile(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load profile:", err)
		return err
	}

	upd := api.ProfileInfoUpdate{
		Username:     current.Username,
		Email:        current.Email,
		FirstName:    current.FirstName,
		LastName:     current.LastName,
		Company:      current.Company,
		FiscalNumber: current.FiscalNumber,
		Phone:        current.Phone,
		Address:      current.Address,
	}

	prompt := func(label, current string) (string, error) {
		s, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s] (enter keeps current, '-' clears)", label, current), a.out)
		if err != nil {
			return "", err
		}
		switch s {
		case "":
			return current, nil
		case "-":
			return "", nil
		default:
			return s, nil
		}
	}

	if upd.FirstName, err = prompt("First name", upd.FirstName); err != nil {
		return err
	}
	if upd.LastName, err = prompt("Last name", upd.LastName); err != nil {
		return err
	}
	if upd.Company, err = prompt("Company", upd.Company); err != nil {
		return err
	}
	if upd.FiscalNumber, err = prompt("Fiscal number", upd.FiscalNumber); err != nil {
		return err
	}
	if upd.Phone, err = prompt("Phone", upd.Phone); err != nil {
		return err
	}
	if upd.Address, err = prompt("Address", upd.Address); err != nil {
		return err
	}

	if err := a.session.UpdateInfo(ctx, upd); err != nil {
		fmt.Fprintln(a.out, "Update failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "Profile updated.")
	return nil
}

// SaveCategories edits and saves the five category tags, independently of
// the personal-information section.
func (a *App) SaveCategories(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}
	current, err := a.session.Profile(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load profile:", err)
		return err
	}

	slots := [5]string{current.Category1, current.Category2, current.Category3, current.Category4, current.Category5}
	for i := range slots {
		s, err := getSimpleText(a.reader,
			fmt.Sprintf("Category %d [%s] (enter keeps current, '-' clears)", i+1, slots[i]), a.out)
		if err != nil {
			return err
		}
		switch s {
		case "":
		case "-":
			slots[i] = ""
		default:
			slots[i] = s
		}
	}

	upd := api.ProfileCategoriesUpdate{
		Category1: slots[0],
		Category2: slots[1],
		Category3: slots[2],
		Category4: slots[3],
		Category5: slots[4],
	}
	if err := a.session.UpdateCategories(ctx, upd); err != nil {
		fmt.Fprintln(a.out, "Update failed:", err)
		return err
	}
	fmt.Fprintln(a.out, "Categories updated.")
	return nil
}
