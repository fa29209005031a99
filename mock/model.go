package mock_generator

// MockTurn is one scripted caller utterance.
type MockTurn struct {
	Transcript string `json:"transcript"`
	DelayMs    int    `json:"delay_ms"`
}
