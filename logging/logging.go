package logging

import (
	"flag"
	"io"
	"os"
	"path"

	"github.com/fernandosanchezjr/bitpatterns/utils"
	"github.com/sirupsen/logrus"
)

const LogPath = "logs"

var logLevel = logrus.InfoLevel.String()
var logToFile bool
var logFile *os.File

func init() {
	flag.StringVar(&logLevel, "log-level", logLevel, "log level (trace, debug, info, warn, error)")
	flag.BoolVar(&logToFile, "log-file", logToFile, "also write logs to <home-folder>/logs/log.out")
}

func getLogFile() *os.File {
	logFolder := utils.GetSubFolder(LogPath)
	f, err := os.OpenFile(path.Join(logFolder, "log.out"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logrus.Fatal("Error opening log file:", err)
		return nil
	}
	return f
}

func exitHandler() {
	if logFile != nil {
		_ = logFile.Close()
	}
}

func SetupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logrus.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	logrus.RegisterExitHandler(exitHandler)
	logrus.SetLevel(level)
	if logToFile {
		logFile = getLogFile()
		logrus.SetOutput(io.MultiWriter(logFile, os.Stdout))
	} else {
		logrus.SetOutput(os.Stdout)
	}
	return nil
}

func Close() {
	exitHandler()
}
