/*
Package logging builds the structured diagnostics logger. Log lines go to
stderr in logfmt so they never mix with the histogram on stdout.
*/
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// DefaultLevel keeps a plain run quiet apart from warnings and errors.
const DefaultLevel = "warn"

// Levels lists the accepted level names, most verbose first.
var Levels = []string{"debug", "info", "warn", "error", "none"}

// New returns a logfmt logger writing to w that drops events below lvl.
func New(w io.Writer, lvl string) (log.Logger, error) {
	opt, err := levelOption(lvl)
	if err != nil {
		return nil, err
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	return level.NewFilter(logger, opt), nil
}

func levelOption(lvl string) (level.Option, error) {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn", "warning", "":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	case "none", "off":
		return level.AllowNone(), nil
	default:
		return nil, fmt.Errorf("unknown log level %q, expected one of %s", lvl, strings.Join(Levels, ", "))
	}
}
