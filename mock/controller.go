package mock_generator

import (
	"encoding/binary"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/riyadominic123/ai-call/application/ports/outbound"
)

type MockRecordingController interface {
	GetRecording(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type mockRecordingController struct {
	logger outbound.LoggerPort
}

func NewMockRecordingController(logger outbound.LoggerPort) MockRecordingController {
	return &mockRecordingController{
		logger: logger,
	}
}

// GetRecording serves one second of silence so a RecordingUrl can point back
// at this server when no telephony account is attached.
func (m *mockRecordingController) GetRecording(c *gin.Context) {
	m.logger.DebugWithFields("serving mock recording", map[string]interface{}{
		"id": c.Param("id"),
	})
	c.Data(http.StatusOK, "audio/wav", silentWav(8000))
}

func (m *mockRecordingController) RegisterRoutes(g *gin.Engine) {
	g.GET("mock/recordings/:id", m.GetRecording)
}

// silentWav builds a mono 8-bit PCM file with the given number of samples.
func silentWav(samples int) []byte {
	const sampleRate = 8000
	buf := make([]byte, 44+samples)
	copy(buf[0:], "RIFF")
	binary.LittleEndian.PutUint32(buf[4:], uint32(36+samples))
	copy(buf[8:], "WAVEfmt ")
	binary.LittleEndian.PutUint32(buf[16:], 16)
	binary.LittleEndian.PutUint16(buf[20:], 1)
	binary.LittleEndian.PutUint16(buf[22:], 1)
	binary.LittleEndian.PutUint32(buf[24:], sampleRate)
	binary.LittleEndian.PutUint32(buf[28:], sampleRate)
	binary.LittleEndian.PutUint16(buf[32:], 1)
	binary.LittleEndian.PutUint16(buf[34:], 8)
	copy(buf[36:], "data")
	binary.LittleEndian.PutUint32(buf[40:], uint32(samples))
	for i := 44; i < len(buf); i++ {
		buf[i] = 0x80
	}
	return buf
}
