package logger

import (
	"bytes"
	"html"
	"io"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger пишет логи в буфер, чтобы их можно было показать на странице рядом с графиком.
// Logs содержит содержимое буфера, уже переведенное в HTML.
type ZapLogger struct {
	log    *zap.Logger
	logBuf *bytes.Buffer
	Logs   []string
}

func New() *ZapLogger {
	return newZapLogger(nil)
}

// NewWithOutput дублирует каждую строку лога в out (например, os.Stderr в текстовом режиме).
func NewWithOutput(out io.Writer) *ZapLogger {
	return newZapLogger(out)
}

// NewNop возвращает логгер, который ничего не пишет.
func NewNop() *ZapLogger {
	return &ZapLogger{
		log:    zap.NewNop(),
		logBuf: &bytes.Buffer{},
	}
}

func newZapLogger(out io.Writer) *ZapLogger {
	logBuf := &bytes.Buffer{}

	config := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    colorLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	encoder := zapcore.NewConsoleEncoder(config)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(logBuf), zap.DebugLevel),
	}
	if out != nil {
		cores = append(cores, zapcore.NewCore(encoder.Clone(), zapcore.AddSync(out), zap.InfoLevel))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))

	return &ZapLogger{
		log:    logger,
		logBuf: logBuf,
	}
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[2006-01-02 | 15:04:05]"))
}

func colorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var colorCode string
	switch level {
	case zapcore.DebugLevel:
		colorCode = "\033[36m" // Cyan
	case zapcore.InfoLevel:
		colorCode = "\033[32m" // Green
	case zapcore.WarnLevel:
		colorCode = "\033[33m" // Yellow
	case zapcore.ErrorLevel:
		colorCode = "\033[31m" // Red
	default:
		colorCode = "\033[0m"
	}
	enc.AppendString(colorCode + level.String() + "\033[0m")
}

var ansiPattern = regexp.MustCompile(`\033\[(\d+)m`)

// ANSI code -> CSS color
var colorMap = map[string]string{
	"31": "red",
	"32": "green",
	"33": "yellow",
	"34": "blue",
	"36": "cyan",
}

// ansiToHTML converts the console encoder output into a <pre> block where
// color escapes become <span> tags. Log text itself is HTML-escaped.
func ansiToHTML(input string) string {
	var result strings.Builder
	var lastIndex int
	spanOpen := false

	result.WriteString("<pre>")

	for _, match := range ansiPattern.FindAllStringSubmatchIndex(input, -1) {
		start, end := match[0], match[1]
		if start > lastIndex {
			result.WriteString(html.EscapeString(input[lastIndex:start]))
		}

		code := input[match[2]:match[3]]
		if spanOpen {
			result.WriteString("</span>")
			spanOpen = false
		}
		if color, ok := colorMap[code]; ok {
			result.WriteString(`<span style="color: ` + color + `;">`)
			spanOpen = true
		}

		lastIndex = end
	}

	if lastIndex < len(input) {
		result.WriteString(html.EscapeString(input[lastIndex:]))
	}
	if spanOpen {
		result.WriteString("</span>")
	}

	result.WriteString("</pre>")

	return result.String()
}

func (z *ZapLogger) UpdateLogs() {
	z.Logs = []string{ansiToHTML(z.logBuf.String())}
}

func (z *ZapLogger) ClearLogs() {
	z.logBuf.Reset()
	z.Logs = nil
}

// Raw возвращает накопленные строки лога как есть, с ANSI-кодами.
func (z *ZapLogger) Raw() string {
	return z.logBuf.String()
}

func (z *ZapLogger) Info(wrappedMsg string, fields ...zap.Field) {
	z.log.Info(wrappedMsg, fields...)
	z.UpdateLogs()
}

func (z *ZapLogger) Debug(wrappedMsg string, fields ...zap.Field) {
	z.log.Debug(wrappedMsg, fields...)
	z.UpdateLogs()
}

func (z *ZapLogger) Warn(wrappedMsg string, fields ...zap.Field) {
	z.log.Warn(wrappedMsg, fields...)
	z.UpdateLogs()
}

func (z *ZapLogger) Error(wrappedMsg string, fields ...zap.Field) {
	z.log.Error(wrappedMsg, fields...)
	z.UpdateLogs()
}

func (z *ZapLogger) Fatal(wrappedMsg string, fields ...zap.Field) {
	z.log.Fatal(wrappedMsg, fields...)
}

func (z *ZapLogger) Sync() error {
	return z.log.Sync()
}
