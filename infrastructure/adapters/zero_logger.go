package adapters

import (
	"io"
	"os"
	"strings"

	"github.com/riyadominic123/ai-call/application/ports/outbound"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type zerologWrapper struct {
	logger zerolog.Logger
}

func NewZerologWrapper() outbound.LoggerPort {
	return NewZerologWrapperWithOptions("info", "json")
}

// NewZerologWrapperWithOptions builds the logger from LOG_LEVEL and LOG_FORMAT
// style values. Unknown levels fall back to info. Every sink also receives
// the JSON stream.
func NewZerologWrapperWithOptions(level string, format string, sinks ...io.Writer) outbound.LoggerPort {
	var out io.Writer = os.Stderr
	if strings.EqualFold(format, "console") {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	if len(sinks) > 0 {
		out = zerolog.MultiLevelWriter(append([]io.Writer{out}, sinks...)...)
	}
	parsedLevel, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		parsedLevel = zerolog.InfoLevel
	}
	return &zerologWrapper{
		logger: zerolog.New(out).Level(parsedLevel).With().Timestamp().Logger(),
	}
}

// NewRotatingLogFile returns a file sink that rolls over at maxSizeMB.
func NewRotatingLogFile(path string, maxSizeMB int, maxBackups int) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
	}
}

func (z *zerologWrapper) Info(msg string) {
	z.logger.Info().Msg(msg)
}

func (z *zerologWrapper) Error(err error, msg string) {
	z.logger.Error().Err(err).Msg(msg)
}

func (z *zerologWrapper) Debug(msg string) {
	z.logger.Debug().Msg(msg)
}

func (z *zerologWrapper) Warn(msg string) {
	z.logger.Warn().Msg(msg)
}

func (z *zerologWrapper) InfoWithFields(msg string, fields map[string]interface{}) {
	z.logger.Info().Fields(fields).Msg(msg)
}

func (z *zerologWrapper) ErrorWithFields(err error, msg string, fields map[string]interface{}) {
	z.logger.Error().Err(err).Fields(fields).Msg(msg)
}

func (z *zerologWrapper) DebugWithFields(msg string, fields map[string]interface{}) {
	z.logger.Debug().Fields(fields).Msg(msg)
}

func (z *zerologWrapper) WarnWithFields(msg string, fields map[string]interface{}) {
	z.logger.Warn().Fields(fields).Msg(msg)
}

func (z *zerologWrapper) With(fields map[string]interface{}) outbound.LoggerPort {
	return &zerologWrapper{
		logger: z.logger.With().Fields(fields).Logger(),
	}
}
