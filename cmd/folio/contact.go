package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/folio/pkg/contact"
)

// errSubmissionFailed makes the process exit non-zero after the result
// has been printed.
var errSubmissionFailed = errors.New("submission failed")

func newContactCmd(envFiles *[]string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Contact form tooling",
	}
	cmd.AddCommand(newContactSendCmd(envFiles))
	return cmd
}

func newContactSendCmd(envFiles *[]string) *cobra.Command {
	var sub contact.Submission

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Submit a message through the contact pipeline",
		Long: `Runs one submission through the same validation and delivery as the
web form. Useful as a smoke test after changing mail settings.

Example:
  folio contact send --name Ana --email ana@example.com \
    --subject Hello --message "Testing the form"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig[contactConfig](*envFiles...)
			if err != nil {
				return err
			}

			log := newLogger(cfg.Log)
			svc, err := newContactService(cfg.Contact, cfg.Mail, log)
			if err != nil {
				return err
			}

			res := svc.Submit(cmd.Context(), sub)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", res.Code, res.Message)
			if !res.Success {
				log.Debug("contact send failed", slog.String("code", string(res.Code)))
				return errSubmissionFailed
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&sub.Name, "name", "", "sender name")
	f.StringVar(&sub.Email, "email", "", "sender email, used as reply-to")
	f.StringVar(&sub.Subject, "subject", "", "message subject")
	f.StringVar(&sub.Message, "message", "", "message body")
	return cmd
}
