package services

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/resenaros/Ecommerce-API/models"
)

type EmailService struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailService builds a mailer from SMTP_* env vars. It returns an error
// when the configuration is incomplete so callers can run without email.
func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 587
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = smtpUser
	}

	return &EmailService{
		dialer: gomail.NewDialer(smtpHost, port, smtpUser, smtpPass),
		from:   from,
	}, nil
}

func (s *EmailService) SendOrderConfirmation(toEmail string, orderID int, orderDate models.OrderDate) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Order Confirmation #%d", orderID))

	body := fmt.Sprintf(`
<html>
<body>
    <h2>Order Confirmation</h2>
    <p>Thank you for your order!</p>
    <p><strong>Order Number:</strong> %d</p>
    <p><strong>Order Date:</strong> %s</p>
    <p>Your order has been received and is being processed.</p>
</body>
</html>
	`, orderID, orderDate.Format(models.OrderDateLayout))

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
