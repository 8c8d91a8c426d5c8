package cli

import (
	"context"
	"fmt"

	"github.com/utender/utender-cli/internal/api"
)

// Contact sends a message through the public contact form. Available
// logged in or out.
func (a *App) Contact(ctx context.Context) error {
	var req api.ContactRequest
	var err error

	if req.Name, err = getSimpleText(a.reader, "Your name", a.out); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Your email", a.out); err != nil {
		return err
	}
	if req.Subject, err = getSimpleText(a.reader, "Subject", a.out); err != nil {
		return err
	}
	if req.Message, err = getSimpleText(a.reader, "Message", a.out); err != nil {
		return err
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		fmt.Fprintln(a.out, "Name, email and message are required.")
		return nil
	}

	if err := a.client.Contact(ctx, req); err != nil {
		fmt.Fprintln(a.out, "Could not send the message:", err)
		return err
	}
	fmt.Fprintln(a.out, "Message sent. We will get back to you soon.")
	return nil
}
