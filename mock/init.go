package mock_generator

import (
	_ "embed"
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/riyadominic123/ai-call/application/ports/outbound"
)

//go:embed turns.json
var defaultTurns []byte

// Init registers the mock recording route and loads the scripted turns used by
// the offline transcriber. An empty scriptFile selects the built-in script.
func Init(g *gin.Engine, scriptFile string, logger outbound.LoggerPort) ([]MockTurn, error) {
	turns, err := loadTurns(scriptFile, logger)
	if err != nil {
		return nil, err
	}

	mockController := NewMockRecordingController(logger)
	mockController.RegisterRoutes(g)

	return turns, nil
}

func loadTurns(scriptFile string, logger outbound.LoggerPort) ([]MockTurn, error) {
	if scriptFile != "" {
		return NewFileTurnReader(logger).Read(scriptFile)
	}
	var turns []MockTurn
	if err := json.Unmarshal(defaultTurns, &turns); err != nil {
		logger.Error(err, "failed to decode built-in turns")
		return nil, err
	}
	return turns, nil
}
