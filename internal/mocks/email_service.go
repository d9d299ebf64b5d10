package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type EmailService struct {
	mock.Mock
}

func (m *EmailService) SendEmailVerification(ctx context.Context, toEmail, displayName, verificationToken string) error {
	args := m.Called(ctx, toEmail, displayName, verificationToken)
	return args.Error(0)
}

func (m *EmailService) SendPasswordResetEmail(ctx context.Context, toEmail, displayName, resetToken string) error {
	args := m.Called(ctx, toEmail, displayName, resetToken)
	return args.Error(0)
}
