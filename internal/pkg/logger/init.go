package logger

import (
	"io"
	log "log/slog"
	"os"
)

var LogWriter io.Writer = os.Stdout

func InitLogger() {
	hStdout := log.NewJSONHandler(os.Stdout, &log.HandlerOptions{Level: log.LevelInfo})

	logger := log.New(&ContextHandler{hStdout})
	log.SetDefault(logger)
}
