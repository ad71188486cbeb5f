package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port    string
	GinMode string

	// Cron spec for the follow-up reminder sweep.
	ReminderCron string

	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioPhoneNumber    string
	TwilioWhatsAppNumber string

	// Directory of built frontend assets; served when it exists.
	StaticDir string
}

func Load() Config {
	return Config{
		Port:                 getenv("PORT", "8080"),
		GinMode:              os.Getenv("GIN_MODE"),
		ReminderCron:         getenv("REMINDER_CRON", "0 9 * * *"),
		TwilioAccountSID:     os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:      os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioPhoneNumber:    os.Getenv("TWILIO_PHONE_NUMBER"),
		TwilioWhatsAppNumber: os.Getenv("TWILIO_WHATSAPP_NUMBER"),
		StaticDir:            getenv("STATIC_DIR", "public"),
	}
}

// NewLogger returns the process-wide application logger.
func NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
	if level, err := logrus.ParseLevel(getenv("LOG_LEVEL", "info")); err == nil {
		log.SetLevel(level)
	}
	return log
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
