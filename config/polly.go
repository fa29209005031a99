package config

type PollyConfig struct {
	VoiceID string
	Engine  string
}

func GetPollyConfig() (*PollyConfig, error) {
	return &PollyConfig{
		VoiceID: getEnvOrDefault("POLLY_VOICE_ID", "Joanna"),
		Engine:  getEnvOrDefault("POLLY_ENGINE", "neural"),
	}, nil
}
