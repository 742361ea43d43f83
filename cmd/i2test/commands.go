package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Bessima/i2test-auth/internal/forms"
	"github.com/Bessima/i2test-auth/internal/repository"
	"github.com/Bessima/i2test-auth/internal/tokens"
)

func runLogin(ctx context.Context, client forms.LoginClientI, storage forms.TokenWriterI, prompt *prompter, username string) error {
	form := forms.NewLoginForm(client, storage)
	defer form.Close()

	username, err := prompt.lineIfEmpty("Username: ", username)
	if err != nil {
		return err
	}
	password, err := prompt.secret("Password: ")
	if err != nil {
		return err
	}
	form.SetUsername(username)
	form.SetPassword(password)

	_, err = form.Submit(ctx)
	prompt.say(form.Message())
	if err != nil {
		return errReported
	}
	return nil
}

func runRegister(ctx context.Context, client forms.RegisterClientI, prompt *prompter, username string) error {
	form := forms.NewRegisterForm(client)
	defer form.Close()

	username, err := prompt.lineIfEmpty("Username: ", username)
	if err != nil {
		return err
	}
	password, err := prompt.secret("Password: ")
	if err != nil {
		return err
	}
	confirm, err := prompt.secret("Confirm password: ")
	if err != nil {
		return err
	}
	form.SetUsername(username)
	form.SetPassword(password)
	form.SetConfirmPassword(confirm)

	err = form.Submit(ctx)
	prompt.say(form.Message())
	if err != nil {
		return errReported
	}
	if form.Redirect() == forms.RouteLogin {
		prompt.say("Run `i2test login` to sign in.")
	}
	return nil
}

func runStatus(ctx context.Context, storage repository.KeyValueStorageI, out io.Writer) error {
	now := time.Now()
	signedIn := false

	for _, key := range []string{repository.AccessKey, repository.RefreshKey} {
		token, err := storage.Get(ctx, key)
		if errors.Is(err, repository.ErrKeyNotFound) {
			fmt.Fprintf(out, "%s: not saved\n", key)
			continue
		}
		if err != nil {
			return err
		}
		signedIn = true

		info, err := tokens.Inspect(token, now)
		if err != nil {
			fmt.Fprintf(out, "%s: saved, claims unreadable\n", key)
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", key, info)
	}

	if !signedIn {
		fmt.Fprintln(out, "Not signed in.")
	}
	return nil
}

func runLogout(ctx context.Context, storage repository.KeyValueStorageI, out io.Writer) error {
	for _, key := range []string{repository.AccessKey, repository.RefreshKey} {
		if err := storage.Delete(ctx, key); err != nil {
			return err
		}
	}
	fmt.Fprintln(out, "Session tokens removed.")
	return nil
}
