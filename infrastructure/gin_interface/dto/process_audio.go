package dto

type ProcessAudioResponse struct {
	TranscribedText string `json:"transcribed_text"`
	LlmReply        string `json:"llm_reply"`
	ReplyAudioPath  string `json:"reply_audio_path"`
	ReplyAudioURL   string `json:"reply_audio_url"`
}

type ErrorResponse struct {
	Detail    string `json:"detail"`
	ErrorKind string `json:"error_kind,omitempty"`
}
