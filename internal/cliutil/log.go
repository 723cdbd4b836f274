// Package cliutil holds the logging setup shared by the commands.
package cliutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a logger writing to w. format is "text" or "json";
// verbose enables debug entries.
func NewLogger(w io.Writer, format string, verbose bool) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetOutput(w)

	switch strings.ToLower(format) {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{
			DisableColors:    true,
			DisableTimestamp: true,
		})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", format)
	}

	l.SetLevel(logrus.InfoLevel)
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	return l, nil
}
