package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

var (
	InfoLogger  *log.Logger
	WarnLogger  *log.Logger
	ErrorLogger *log.Logger
)

const flags = log.Ldate | log.Ltime | log.Lmicroseconds | log.LUTC

func init() {
	InfoLogger = log.New(os.Stdout, "INFO: ", flags)
	WarnLogger = log.New(os.Stdout, "WARN: ", flags)
	ErrorLogger = log.New(os.Stderr, "ERROR: ", flags)
}

// SetOutput redirects all levels to w. Tests use it to capture log lines.
func SetOutput(w io.Writer) {
	InfoLogger.SetOutput(w)
	WarnLogger.SetOutput(w)
	ErrorLogger.SetOutput(w)
}

func Info(msg string, v ...interface{}) {
	InfoLogger.Print(format(msg, v))
}

func Warn(msg string, v ...interface{}) {
	WarnLogger.Print(format(msg, v))
}

// Error logs msg with err appended.
func Error(msg string, err error, v ...interface{}) {
	line := format(msg, v)
	if err != nil {
		line += ": " + err.Error()
	}
	ErrorLogger.Print(line)
}

// format treats msg as a Printf format when it has verbs, otherwise renders
// v as key=value pairs.
func format(msg string, v []interface{}) string {
	if len(v) == 0 {
		return msg
	}
	if strings.Contains(msg, "%") {
		return fmt.Sprintf(msg, v...)
	}
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i < len(v); i += 2 {
		if i+1 == len(v) {
			fmt.Fprintf(&b, " %v", v[i])
			break
		}
		fmt.Fprintf(&b, " %v=%v", v[i], v[i+1])
	}
	return b.String()
}
