package notification

import (
	"fmt"
	"net/url"
	"strings"

	"freshbit/internal/events"
)

func link(frontendURL, path, token string) string {
	return strings.TrimRight(frontendURL, "/") + path + "?token=" + url.QueryEscape(token)
}

func greeting(name string) string {
	if strings.TrimSpace(name) == "" {
		return "Hello,"
	}
	return fmt.Sprintf("Hello %s,", name)
}

func verificationEmail(frontendURL string, ev events.AccountTokenEvent) Message {
	return Message{
		To:      ev.Email,
		Subject: "Verify your FreshBit email",
		Body: fmt.Sprintf("%s\n\nConfirm your email address by opening the link below:\n\n%s\n\nIf you did not create a FreshBit account you can ignore this email.",
			greeting(ev.Name), link(frontendURL, "/verify-email", ev.Token)),
	}
}

func passwordResetEmail(frontendURL string, ev events.AccountTokenEvent) Message {
	return Message{
		To:      ev.Email,
		Subject: "Reset your FreshBit password",
		Body: fmt.Sprintf("%s\n\nA password reset was requested for your account. Open the link below to choose a new password:\n\n%s\n\nThe link can be used once.",
			greeting(ev.Name), link(frontendURL, "/reset-password", ev.Token)),
	}
}

func invitationEmail(frontendURL string, college Contact, ev events.DriveEvent) Message {
	title := ev.DriveTitle
	if title == "" {
		title = "a placement drive"
	}
	return Message{
		To:      college.Email,
		Subject: fmt.Sprintf("Invitation: %s", title),
		Body: fmt.Sprintf("%s\n\n%s has been invited to %s. Review and respond to the invitation here:\n\n%s/college/invitations",
			greeting(college.Name), college.Name, title, strings.TrimRight(frontendURL, "/")),
	}
}

func invitationResponseEmail(company Contact, college Contact, ev events.DriveEvent) Message {
	title := ev.DriveTitle
	if title == "" {
		title = ev.DriveID
	}
	verb := strings.ToLower(ev.Status)
	return Message{
		To:      company.Email,
		Subject: fmt.Sprintf("%s %s your invitation", college.Name, verb),
		Body: fmt.Sprintf("%s\n\n%s has %s the invitation to %s.",
			greeting(company.Name), college.Name, verb, title),
	}
}
