package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// ZerologAdapter writes Logger entries through zerolog. Every entry carries
// the emitting component; extra fields are written in key order.
type ZerologAdapter struct {
	logger zerolog.Logger
}

func NewZerolog(writer io.Writer, level zerolog.Level) *ZerologAdapter {
	return &ZerologAdapter{
		logger: zerolog.New(writer).Level(level).With().Timestamp().Logger(),
	}
}

func (z *ZerologAdapter) Info(component, message string, fields map[string]interface{}) {
	z.entry(z.logger.Info(), component, fields).Msg(message)
}

// Error logs err with its own text as the message.
func (z *ZerologAdapter) Error(component string, err error, fields map[string]interface{}) {
	message := "unknown error"
	if err != nil {
		message = err.Error()
	}
	z.entry(z.logger.Error().Err(err), component, fields).Msg(message)
}

func (z *ZerologAdapter) Warning(component, message string, fields map[string]interface{}) {
	z.entry(z.logger.Warn(), component, fields).Msg(message)
}

func (z *ZerologAdapter) Debug(component, message string, fields map[string]interface{}) {
	z.entry(z.logger.Debug(), component, fields).Msg(message)
}

// With returns a child logger that stamps every entry with fields
func (z *ZerologAdapter) With(fields map[string]interface{}) Logger {
	return &ZerologAdapter{logger: z.logger.With().Fields(fields).Logger()}
}

func (z *ZerologAdapter) entry(event *zerolog.Event, component string, fields map[string]interface{}) *zerolog.Event {
	event = event.Str("component", component)
	if len(fields) > 0 {
		event = event.Fields(fields)
	}
	return event
}
