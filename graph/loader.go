package graph

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// ReadFile loads a Graph from a plain-text edge list, one edge per
// line, whitespace-separated: "<u> <v> <c1> <c2>". Lines with a
// different token count are silently skipped (MalformedInput, §7);
// logger receives a warning for each one when non-nil. Self-loops and
// duplicate (u, v) lines are permitted and become parallel edges.
//
// When the file cannot be opened, ReadFile logs a warning (if logger
// is non-nil) and returns an empty Graph together with ErrFileNotFound
// — the caller decides whether that is fatal.
func ReadFile(path string, logger *log.Logger) (*Graph, error) {
	g := New()

	f, err := os.Open(path)
	if err != nil {
		if logger != nil {
			logger.Warn("map file not found", "path", path, "err", err)
		}
		return g, ErrFileNotFound
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		parts := strings.Fields(scanner.Text())
		if len(parts) != 4 {
			if logger != nil && len(parts) > 0 {
				logger.Warn("skipping malformed edge line", "line", lineNo, "tokens", len(parts))
			}
			continue
		}

		u, err1 := strconv.ParseInt(parts[0], 10, 64)
		v, err2 := strconv.ParseInt(parts[1], 10, 64)
		c1, err3 := strconv.ParseFloat(parts[2], 64)
		c2, err4 := strconv.ParseFloat(parts[3], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			if logger != nil {
				logger.Warn("skipping unparsable edge line", "line", lineNo)
			}
			continue
		}

		g.AddEdge(Vertex(u), Vertex(v), c1, c2)
	}

	return g, nil
}
