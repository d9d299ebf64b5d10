package service

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"habitloop/internal/config"
)

type EmailService interface {
	SendEmailVerification(ctx context.Context, toEmail, displayName, verificationToken string) error
	SendPasswordResetEmail(ctx context.Context, toEmail, displayName, resetToken string) error
}

type emailService struct {
	client *resend.Client
	config *config.Config
}

func NewEmailService(cfg *config.Config) EmailService {
	client := resend.NewClient(cfg.ResendAPIKey)
	return &emailService{
		client: client,
		config: cfg,
	}
}

func (s *emailService) SendEmailVerification(ctx context.Context, toEmail, displayName, verificationToken string) error {
	subject := "Verify your email - HabitLoop"
	verificationLink := fmt.Sprintf("https://%s/verify-email?token=%s", s.config.Domain, verificationToken)

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Verify your email - HabitLoop</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f9fafb;">

	<!-- Header -->
	<div style="background: linear-gradient(135deg, #8b5cf6 0%%, #6d28d9 100%%); padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
		<h1 style="color: #ffffff; margin: 0; font-size: 28px;">
			HabitLoop
		</h1>
		<p style="color: #ede9fe; margin: 10px 0 0 0; font-size: 16px;">
			Build habits together, one day at a time
		</p>
	</div>

	<!-- Content -->
	<div style="background-color: #ffffff; padding: 30px; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 10px 10px;">

		<h2 style="color: #111827; margin-top: 0;">
			Hi, %s!
		</h2>

		<p>
			Thanks for joining <strong>HabitLoop</strong>.
			Track your daily habits, keep your streaks alive, and cheer your friends on.
		</p>

		<div style="background-color: #eff6ff; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #3b82f6;">
			<h3 style="margin-top: 0; color: #1e40af;">
				One more step
			</h3>
			<p style="margin-bottom: 0;">
				Click the button below to verify your email address.
				This link expires in <strong>24 hours</strong>.
			</p>
		</div>

		<!-- Button -->
		<div style="text-align: center; margin: 30px 0;">
			<a href="%s"
			   style="background-color: #3b82f6; color: #ffffff; padding: 14px 28px; text-decoration: none; border-radius: 6px; font-weight: bold; display: inline-block;">
				Verify My Email
			</a>
		</div>

		<!-- Fallback Link -->
		<p style="font-size: 14px; color: #6b7280;">
			If the button does not work, copy and paste this link into your browser:
			<br>
			<a href="%s" style="color: #3b82f6; word-break: break-all;">
				%s
			</a>
		</p>

		<!-- Security Note -->
		<p style="font-size: 14px; color: #6b7280;">
			If you did not sign up for HabitLoop, you can safely ignore this email.
			Never share your verification link with anyone.
		</p>

		<hr style="border: none; border-top: 1px solid #e5e7eb; margin: 30px 0;">

		<p style="font-size: 14px; color: #6b7280;">
			Keep the streak going,<br>
			<strong>The HabitLoop Team</strong>
		</p>
	</div>

</body>
</html>`, displayName, verificationLink, verificationLink, verificationLink)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("HabitLoop <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    html,
		Subject: subject,
	}

	_, err := s.client.Emails.Send(params)
	return err
}

func (s *emailService) SendPasswordResetEmail(ctx context.Context, toEmail, displayName, resetToken string) error {
	subject := "Reset your password - HabitLoop"
	resetLink := fmt.Sprintf("https://%s/reset-password?token=%s", s.config.Domain, resetToken)

	html := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Reset your password - HabitLoop</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; background-color: #f9fafb;">

	<!-- Header -->
	<div style="background: linear-gradient(135deg, #8b5cf6 0%%, #6d28d9 100%%); padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
		<h1 style="color: #ffffff; margin: 0; font-size: 28px;">
			HabitLoop
		</h1>
		<p style="color: #ede9fe; margin: 10px 0 0 0; font-size: 16px;">
			Build habits together, one day at a time
		</p>
	</div>

	<!-- Content -->
	<div style="background-color: #ffffff; padding: 30px; border: 1px solid #e5e7eb; border-top: none; border-radius: 0 0 10px 10px;">

		<h2 style="color: #111827; margin-top: 0;">
			Hi, %s!
		</h2>

		<p>
			We received a request to reset the password for your HabitLoop account.
		</p>

		<div style="background-color: #fffbeb; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #f59e0b;">
			<h3 style="margin-top: 0; color: #92400e;">
				Reset your password
			</h3>
			<p style="margin-bottom: 0;">
				Click the button below to choose a new password.
				This link expires in <strong>1 hour</strong>.
			</p>
		</div>

		<!-- Button -->
		<div style="text-align: center; margin: 30px 0;">
			<a href="%s"
			   style="background-color: #f59e0b; color: #ffffff; padding: 14px 28px; text-decoration: none; border-radius: 6px; font-weight: bold; display: inline-block;">
				Reset My Password
			</a>
		</div>

		<!-- Fallback Link -->
		<p style="font-size: 14px; color: #6b7280;">
			If the button does not work, copy and paste this link into your browser:
			<br>
			<a href="%s" style="color: #f59e0b; word-break: break-all;">
				%s
			</a>
		</p>

		<!-- Security Note -->
		<p style="font-size: 14px; color: #6b7280;">
			If you did not request this reset, you can safely ignore this email.
			Never share your reset link with anyone.
		</p>

		<hr style="border: none; border-top: 1px solid #e5e7eb; margin: 30px 0;">

		<p style="font-size: 14px; color: #6b7280;">
			Keep the streak going,<br>
			<strong>The HabitLoop Team</strong>
		</p>
	</div>

</body>
</html>`, displayName, resetLink, resetLink, resetLink)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("HabitLoop <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    html,
		Subject: subject,
	}

	_, err := s.client.Emails.Send(params)
	return err
}
