package sdk

import "go.uber.org/zap"

// Logger receives contract event lines (mm|id:1|by:...).
type Logger interface {
	Log(msg string)
}

// NopLogger drops everything.
type NopLogger struct{}

func (NopLogger) Log(string) {}

// RecordingLogger keeps every line in memory so tests can assert on emitted events.
type RecordingLogger struct {
	lines []string
}

func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

func (r *RecordingLogger) Log(msg string) {
	r.lines = append(r.lines, msg)
}

// Lines returns a copy of everything logged so far.
func (r *RecordingLogger) Lines() []string {
	out := make([]string, len(r.lines))
	copy(out, r.lines)
	return out
}

// Last returns the most recent line, or "" when nothing was logged.
func (r *RecordingLogger) Last() string {
	if len(r.lines) == 0 {
		return ""
	}
	return r.lines[len(r.lines)-1]
}

func (r *RecordingLogger) Reset() {
	r.lines = nil
}

// ZapLogger forwards contract events to a zap logger at info level.
type ZapLogger struct {
	logger *zap.Logger
}

func NewZapLogger(logger *zap.Logger) *ZapLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapLogger{logger: logger}
}

func (z *ZapLogger) Log(msg string) {
	z.logger.Info("contract event", zap.String("event", msg))
}

// TeeLogger fans a line out to several loggers.
type TeeLogger []Logger

func (t TeeLogger) Log(msg string) {
	for _, l := range t {
		l.Log(msg)
	}
}
