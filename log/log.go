// Package log provides the leveled loggers used across the module.
package log

import (
	"io"
	"log"
	"os"
)

var (
	Trace   *log.Logger
	Info    *log.Logger
	Warning *log.Logger
	Error   *log.Logger
)

// TraceEnvVar enables trace output when set to a non-empty value.
const TraceEnvVar = "MEGAPDF_TRACE"

func init() {
	traceOut := io.Discard
	if os.Getenv(TraceEnvVar) != "" {
		traceOut = os.Stderr
	}
	InitLog(traceOut, os.Stdout, os.Stderr, os.Stderr)
}

// InitLog rewires the logger outputs. Tests use this to capture output.
func InitLog(trace, info, warning, err io.Writer) {
	Trace = log.New(trace, "TRACE: ", log.Ldate|log.Ltime|log.Lshortfile)
	Info = log.New(info, "", 0)
	Warning = log.New(warning, "WARNING: ", 0)
	Error = log.New(err, "ERROR: ", 0)
}
