package app

import "github.com/sirupsen/logrus"

// SetupLogging configures logrus for terminal diagnostics on stderr.
// Timestamps are noise for a one-shot generator.
func SetupLogging(verbose bool) {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}
