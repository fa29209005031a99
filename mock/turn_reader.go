package mock_generator

import (
	"encoding/json"
	"os"

	"github.com/riyadominic123/ai-call/application/ports/outbound"
)

type TurnReader interface {
	Read(fileName string) ([]MockTurn, error)
}

type fileTurnReader struct {
	logger outbound.LoggerPort
}

func NewFileTurnReader(logger outbound.LoggerPort) TurnReader {
	return &fileTurnReader{
		logger: logger,
	}
}

func (f *fileTurnReader) Read(fileName string) ([]MockTurn, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			f.logger.Error(err, "failed to close file")
		}
	}(file)

	var turns []MockTurn
	if err := json.NewDecoder(file).Decode(&turns); err != nil {
		f.logger.Error(err, "failed to decode json")
		return nil, err
	}

	return turns, nil
}
