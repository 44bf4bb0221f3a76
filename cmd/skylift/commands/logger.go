package commands

import (
	"os"

	"github.com/rs/zerolog"
)

// cliLogger adapts a zerolog logger to the skylift.Logger interface so that
// --verbose surfaces the transport's request/response logging on stderr.
type cliLogger struct {
	logger zerolog.Logger
}

func newCLILogger() *cliLogger {
	return &cliLogger{
		logger: zerolog.New(os.Stderr).With().Timestamp().Logger(),
	}
}

func (l *cliLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug().Fields(fields).Msg(msg)
}

func (l *cliLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info().Fields(fields).Msg(msg)
}

func (l *cliLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn().Fields(fields).Msg(msg)
}

func (l *cliLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error().Fields(fields).Msg(msg)
}
