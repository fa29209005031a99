package dto

type VoiceWebhookRequest struct {
	CallSid      string `form:"CallSid" binding:"required"`
	RecordingUrl string `form:"RecordingUrl"`
}

type StatusCallbackRequest struct {
	CallSid    string `form:"CallSid" binding:"required"`
	CallStatus string `form:"CallStatus"`
}
