package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/skybi/hashtable/internal/hashmap"
)

// ErrMalformedLine is returned for script lines that match none of the known commands
var ErrMalformedLine = errors.New("malformed line (expected 'key=value', '-key' or '?key')")

// runScript applies a line based script to the given table.
// Lookup results are written to out; everything else is logged.
func runScript(logger zerolog.Logger, table hashmap.Map[string, string], in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for line := 1; scanner.Scan(); line++ {
		if err := applyLine(logger, table, scanner.Text(), out); err != nil {
			return errors.Wrapf(err, "line %d", line)
		}
	}
	return errors.Wrap(scanner.Err(), "could not read the script")
}

func applyLine(logger zerolog.Logger, table hashmap.Map[string, string], raw string, out io.Writer) error {
	line := strings.TrimSpace(raw)
	switch {
	case line == "" || strings.HasPrefix(line, "#"):
		return nil
	case strings.HasPrefix(line, "-"):
		key := line[1:]
		removed, ok := table.Remove(key)
		logger.Debug().Str("key", key).Bool("existed", ok).Str("removed", removed).Msg("removed key")
		return nil
	case strings.HasPrefix(line, "?"):
		key := line[1:]
		value, ok := table.Lookup(key)
		if !ok {
			value = "<absent>"
		}
		_, err := fmt.Fprintf(out, "%s: %s\n", key, value)
		return err
	}

	key, value, found := strings.Cut(line, "=")
	if !found || key == "" {
		return ErrMalformedLine
	}
	previous, existed := table.Update(key, value)
	event := logger.Debug().Str("key", key).Str("value", value)
	if existed {
		event = event.Str("previous", previous)
	}
	event.Int("size", table.Size()).Msg("updated key")
	return nil
}
