package main

import (
	"log"

	"socialcal/cmd"
	"socialcal/config"
	"socialcal/fs"
	"socialcal/term"

	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	cfg := config.LoadConfig()

	err := fs.Init(cfg.IsDevelopment())
	if err != nil {
		term.OutputErrorAndExit("Error initializing home dir: %v", err)
	}

	// set up a rotating file logger
	log.SetOutput(&lumberjack.Logger{
		Filename:   fs.LogPath,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	})

	log.Println("Starting socialcal - logging initialized")

	cmd.Execute(cfg)
}
