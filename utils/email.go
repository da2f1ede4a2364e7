// utils/email.go
package utils

import (
	"fmt"
	"go-storefront/models"

	"github.com/keighl/postmark"
)

// EmailService handles sending emails using Postmark
type EmailService struct {
	client *postmark.Client
	sender string
}

// NewEmailService initializes and returns a new EmailService instance.
// With an empty API token the service is disabled and sends become
// no-ops, so local development does not need Postmark credentials.
func NewEmailService(apiToken, sender string) *EmailService {
	if apiToken == "" {
		return &EmailService{}
	}
	client := postmark.NewClient(apiToken, "")
	return &EmailService{
		client: client,
		sender: sender,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	if es.client == nil {
		return nil
	}

	_, err := es.client.SendEmail(postmark.Email{
		From:     es.sender,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendOrderConfirmationEmail sends an order confirmation email to the user
func (es *EmailService) SendOrderConfirmationEmail(toEmail string, order models.Order) error {
	subject := "Order Confirmation"
	htmlContent := fmt.Sprintf(
		"<strong>Dear Customer,</strong><br><br>Thank you for your purchase! Your order <strong>%s</strong> has been placed successfully.<br><br>Total Amount: <strong>$%.2f</strong><br>Status: <strong>%s</strong><br><br>Thank you for shopping with us!",
		order.OrderNumber,
		order.TotalAmount,
		order.Status,
	)

	return es.SendEmail(toEmail, subject, htmlContent)
}
