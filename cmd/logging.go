package cmd

import (
	"log/slog"
	"os"

	"github.com/Manu343726/sim8086/cmd/settings"
	slogmulti "github.com/samber/slog-multi"
)

var logFile *os.File

// Installs the default slog logger: text on stderr, plus JSON into the log file if one is configured
func setupLogging(s settings.Settings) error {
	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: s.LogLevel}),
	}

	if s.LogFile != "" {
		file, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}

		logFile = file
		handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
	return nil
}

func closeLogging() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
