package cli

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/birouted/biroute/bod"
	"github.com/birouted/biroute/graph"
	"github.com/birouted/biroute/routing"
)

// CLI holds the command tree's shared, mutable logging configuration.
type CLI struct {
	logger *log.Logger
	out    io.Writer
}

// New returns a CLI that logs to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{logger: newLogger(w, level), out: w}
}

// SetLogLevel reconfigures the CLI's logger in place, used once the
// --verbose flag has been parsed.
func (c *CLI) SetLogLevel(level log.Level) {
	c.logger.SetLevel(level)
}

// RootCommand builds the bodroute root command: a positional
// map_file_path, start_node, end_node. It does not register the
// --verbose flag itself; Execute adds it, and run reads it to enable
// the decentralizability trace.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "bodroute <map_file_path> <start_node> <end_node>",
		Short: "Compute Pareto-optimal bi-objective routes and check decentralizability",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd, args)
		},
	}
	return root
}

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	ctx := withLogger(cmd.Context(), c.logger)
	logger := loggerFromContext(ctx)

	mapPath := args[0]
	start, err := parseVertex(args[1], "start_node")
	if err != nil {
		return err
	}
	end, err := parseVertex(args[2], "end_node")
	if err != nil {
		return err
	}

	g, err := graph.ReadFile(mapPath, logger)
	if err != nil {
		return fmt.Errorf("loading map: %w", err)
	}

	logger.Info("computing Pareto-optimal paths", "start", start, "end", end)
	solutions := bod.BOD(g, start)

	ps, ok := solutions[end]
	if !ok || ps.Len() == 0 {
		return fmt.Errorf("%w: node %v is not reachable from %v", routing.ErrUnreachable, end, start)
	}

	for _, v := range ps.Values() {
		fmt.Fprintf(c.out, "(g1=%v, g2=%v)\n", v[0], v[1])
	}

	var trace io.Writer
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		trace = c.out
	}

	ok2, mismatch, err := routing.Decentralized(g, start, end, bod.BOD, routing.MinG1, math.Inf(1), math.Inf(1), trace)
	if err != nil {
		logger.Warn("decentralizability check could not complete", "err", err)
	} else if ok2 {
		logger.Info("selection strategy is decentralized for this route")
	} else {
		logger.Warn("selection strategy is not decentralized", "at_node", mismatch.Node)
	}

	return nil
}

func parseVertex(raw, name string) (graph.Vertex, error) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer vertex id: %w", name, err)
	}
	return graph.Vertex(v), nil
}

// Execute builds and runs the root command against os.Args, the
// convenience entry point for cmd/bodroute.
func Execute() error {
	c := New(os.Stderr, log.InfoLevel)
	root := c.RootCommand()
	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging and the decentralizability trace")

	original := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		level := log.InfoLevel
		if verbose {
			level = log.DebugLevel
		}
		c.SetLogLevel(level)
		if original != nil {
			return original(cmd, args)
		}
		return nil
	}

	return root.Execute()
}
