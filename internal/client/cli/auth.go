package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/mlevko/storefront/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts the user for an email and password and attempts to create
// a new account. Signup does not log the user in; the backend issues tokens
// only on login.
func (a *App) Signup(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.authService.Signup(ctx, email, password); err != nil {
		if errors.Is(err, api.ErrAlreadyExists) {
			fmt.Println("An account with this email already exists.")
			return nil
		}
		log.Printf("Signup unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Account created. You can now log in.")
	return nil
}

// Login prompts the user for credentials and tries to authenticate. On
// success the issued token and email are persisted, so the session survives
// a client restart.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	sess, err := a.authService.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			fmt.Println("Invalid credentials.")
			return nil
		}
		if errors.Is(err, api.ErrUnavailable) {
			fmt.Println("Server unavailable, try again later.")
			return nil
		}
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	fmt.Printf("Logged in as %s\n", sess.Email)
	return nil
}

// Logout wipes the persisted session. Safe to call when not logged in.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

// Whoami prints the email of the current session, if any.
func (a *App) Whoami(ctx context.Context) error {
	sess := a.authService.Session()
	if sess == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Println(sess.Email)
	return nil
}

// Ping reports backend reachability.
func (a *App) Ping(ctx context.Context) error {
	if err := a.authService.Ping(ctx); err != nil {
		fmt.Println("Server unreachable.")
		return err
	}
	fmt.Println("Server is up.")
	return nil
}
