package main

import (
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"

	"talkbuddy/internal/logging"
)

func main() {
	app := NewApp()

	err := wails.Run(&options.App{
		Title:     "TalkBuddy",
		Width:     480,
		Height:    820,
		OnStartup: app.startup,
		Bind: []interface{}{
			app,
		},
	})
	if err != nil {
		logger := logging.New("main")
		logger.Fatal().Err(err).Msg("application failed")
	}
}
