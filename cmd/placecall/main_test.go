package main

import (
	"testing"

	"github.com/riyadominic123/ai-call/config"
)

func TestBuildPlaceCallRequest_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("TWILIO_PHONE_NUMBER", "+15550000001")
	t.Setenv("YOUR_PHONE_NUMBER", "+15550000002")

	req, err := buildPlaceCallRequest(&config.TwilioConfig{PublicURL: "https://example.ngrok.app"}, "+15559999999", "")
	if err != nil {
		t.Fatal(err)
	}
	if req.To != "+15559999999" || req.From != "+15550000001" {
		t.Fatalf("unexpected numbers %+v", req)
	}
	if req.WebhookURL != "https://example.ngrok.app/twilio_voice" || req.StatusCallbackURL != "https://example.ngrok.app/twilio_status" {
		t.Fatalf("unexpected callbacks %+v", req)
	}
}

func TestBuildPlaceCallRequest_MissingNumbers(t *testing.T) {
	t.Setenv("TWILIO_PHONE_NUMBER", "")
	t.Setenv("YOUR_PHONE_NUMBER", "")

	if _, err := buildPlaceCallRequest(&config.TwilioConfig{}, "", ""); err == nil {
		t.Fatal("expected missing numbers to fail")
	}
}
