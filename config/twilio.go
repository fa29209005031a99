package config

import (
	"fmt"
	"os"
	"strings"
)

type TwilioConfig struct {
	AccountSID        string
	AuthToken         string
	PublicURL         string
	ValidateSignature bool
}

func GetTwilioConfig() (*TwilioConfig, error) {
	accountSID := os.Getenv("TWILIO_ACCOUNT_SID")
	if accountSID == "" {
		return nil, fmt.Errorf("TWILIO_ACCOUNT_SID must be set")
	}
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	if authToken == "" {
		return nil, fmt.Errorf("TWILIO_AUTH_TOKEN must be set")
	}
	publicURL := getEnvOrDefault("PUBLIC_URL", os.Getenv("NGROK_URL"))
	if publicURL == "" {
		return nil, fmt.Errorf("PUBLIC_URL or NGROK_URL must be set")
	}
	validate, err := getEnvBool("TWILIO_VALIDATE_SIGNATURE", true)
	if err != nil {
		return nil, err
	}

	return &TwilioConfig{
		AccountSID:        accountSID,
		AuthToken:         authToken,
		PublicURL:         strings.TrimRight(publicURL, "/"),
		ValidateSignature: validate,
	}, nil
}

type OutboundCallConfig struct {
	From string
	To   string
}

func GetOutboundCallConfig() (*OutboundCallConfig, error) {
	from := os.Getenv("TWILIO_PHONE_NUMBER")
	if from == "" {
		return nil, fmt.Errorf("TWILIO_PHONE_NUMBER must be set")
	}
	to := os.Getenv("YOUR_PHONE_NUMBER")
	if to == "" {
		return nil, fmt.Errorf("YOUR_PHONE_NUMBER must be set")
	}
	return &OutboundCallConfig{
		From: from,
		To:   to,
	}, nil
}
