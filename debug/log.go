package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/signadot/structext/ir"
)

var (
	handler = newHandler(os.Stderr)
	logger  = slog.New(handler)
)

func newHandler(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.WarnLevel,
		Prefix:          "stx",
	})
}

// Logger returns the shared logger.
func Logger() *slog.Logger {
	return logger
}

// SetVerbose lowers the shared logger's level to debug, or raises it
// back to warnings.
func SetVerbose(v bool) {
	if v {
		handler.SetLevel(log.DebugLevel)
		return
	}
	handler.SetLevel(log.WarnLevel)
}

// SetOutput redirects the shared logger.
func SetOutput(w io.Writer) {
	handler.SetOutput(w)
}

// Logf formats msg and logs it at debug level as a single record
// without trailing newlines.  Node, map and slice arguments are
// rendered as JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.Marshal(a)
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			d, err := json.Marshal(ir.ToAny(x))
			if err != nil {
				args[i] = fmt.Sprintf("[raw *ir.Node] %v", x)
				continue
			}
			args[i] = string(d)
		}
	}
	logger.Debug(strings.TrimRight(fmt.Sprintf(msg, args...), "\n"))
}
