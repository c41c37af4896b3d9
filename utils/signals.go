package utils

import (
	"os"
	"os/signal"
)

// Wait blocks until the process is interrupted.
func Wait() {
	exitChan := make(chan os.Signal, 1)
	signal.Notify(exitChan, os.Interrupt)
	<-exitChan
	signal.Stop(exitChan)
}
