package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config del logger: el entorno decide el formato de salida.
type Config struct {
	Env   string // development escribe consola coloreada; cualquier otro, JSON
	Level string // debug, info, warn, error (default: info)
}

// Logger envuelve zerolog para inyectarlo como dependencia única.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger de la aplicación y lo instala también como
// logger global de zerolog, para las librerías que escriben por ahí.
func New(cfg Config) *Logger {
	var out io.Writer = os.Stdout
	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zl := zerolog.New(out).Level(level).With().Timestamp().Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }
