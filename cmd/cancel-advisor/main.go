package main

import (
	"os"

	"github.com/callcenter/cancel-advisor/cmd/cancel-advisor/commands"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Logs go to stderr so report output on stdout stays pipeable
	log.SetOutput(os.Stderr)
	log.SetLevel(log.InfoLevel)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})

	if err := commands.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
