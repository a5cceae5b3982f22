package main

import (
	"io"
	"log/slog"
	"os"
)

// Logger is used for debug diagnostics. It discards everything until
// initLogging enables it.
var Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// initLogging turns on debug output to w when VEPRETTY_DEBUG=1. Build logs
// stay clean otherwise.
func initLogging(w io.Writer) {
	if os.Getenv("VEPRETTY_DEBUG") != "1" {
		Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	Logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
