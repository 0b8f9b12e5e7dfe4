package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mlevko/storefront/internal/client/api"
)

// ShowProfile fetches and prints the profile of the logged-in user. A stale
// token surfaces here as an unauthorized error, in which case the persisted
// session is dropped and the user is asked to log in again.
func (a *App) ShowProfile(ctx context.Context) error {
	sess := a.authService.Session()
	if sess == nil {
		fmt.Println("Log in first.")
		return nil
	}

	profile, err := a.profileService.Get(ctx, sess.Token)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			fmt.Println("Session expired, please log in again.")
			return a.authService.Logout(ctx)
		}
		return err
	}

	fmt.Printf("Email:         %s\n", profile.Email)
	fmt.Printf("Date of birth: %s\n", orNotSet(profile.DOB))
	fmt.Printf("Gender:        %s\n", orNotSet(profile.Gender))
	return nil
}

// UpdateProfile prompts for the editable profile fields and submits them.
// Both fields are free-form; the backend stores whatever the user enters.
func (a *App) UpdateProfile(ctx context.Context) error {
	sess := a.authService.Session()
	if sess == nil {
		fmt.Println("Log in first.")
		return nil
	}

	dob, err := getSimpleText(a.reader, "Enter date of birth (YYYY-MM-DD)", os.Stdout)
	if err != nil {
		return err
	}

	gender, err := getSimpleText(a.reader, "Enter gender", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.profileService.Update(ctx, sess.Token, dob, gender); err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			fmt.Println("Session expired, please log in again.")
			return a.authService.Logout(ctx)
		}
		return err
	}

	fmt.Println("Profile updated.")
	return nil
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
