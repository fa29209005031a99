package outbound

import "context"

type PlaceCallRequest struct {
	To                string
	From              string
	WebhookURL        string
	StatusCallbackURL string
}

type CallPlacerPort interface {
	Place(ctx context.Context, req PlaceCallRequest) (string, error)
}
