package adapters

import (
	"context"
	"errors"

	"github.com/riyadominic123/ai-call/application/ports/outbound"
	"github.com/riyadominic123/ai-call/config"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type twilioCallPlacer struct {
	logger outbound.LoggerPort
	client *twilio.RestClient
}

func NewTwilioCallPlacer(twilioConfig *config.TwilioConfig, logger outbound.LoggerPort) outbound.CallPlacerPort {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: twilioConfig.AccountSID,
		Password: twilioConfig.AuthToken,
	})
	return &twilioCallPlacer{
		logger: logger,
		client: client,
	}
}

func (t *twilioCallPlacer) Place(_ context.Context, req outbound.PlaceCallRequest) (string, error) {
	params := &twilioApi.CreateCallParams{}
	params.SetTo(req.To)
	params.SetFrom(req.From)
	params.SetUrl(req.WebhookURL)
	if req.StatusCallbackURL != "" {
		params.SetStatusCallback(req.StatusCallbackURL)
		params.SetStatusCallbackEvent([]string{"completed"})
	}

	resp, err := t.client.Api.CreateCall(params)
	if err != nil {
		t.logger.ErrorWithFields(err, "Failed to place outbound call", map[string]interface{}{
			"to": req.To,
		})
		return "", err
	}
	if resp.Sid == nil {
		return "", errors.New("twilio returned a call without a sid")
	}

	t.logger.InfoWithFields("Outbound call placed", map[string]interface{}{
		"to":       req.To,
		"call_sid": *resp.Sid,
	})
	return *resp.Sid, nil
}
