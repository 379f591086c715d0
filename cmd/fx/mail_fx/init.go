package mail_fx

import (
	"go.uber.org/fx"
	"log"
	"os"
	"possuite/internal/services"
	"strconv"
)

var Module = fx.Provide(provideMailService)

// Mail stays optional: a misconfigured SMTP account disables the
// notification path instead of blocking startup.
func provideMailService() services.IMailService {

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587 // STARTTLS default
	}

	cfg := services.SMTPConfig{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       port,
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       os.Getenv("SMTP_FROM"),
		FromName:   "PosSuite",
		UseSSL:     port == 465,
		RequireTLS: true,

		AppName: "PosSuite",
	}

	mailService, err := services.NewSMTPMailService(cfg)
	if err != nil {
		log.Printf("Failed to initialize SMTP mail service: %v", err)
		return nil
	}

	return mailService
}
