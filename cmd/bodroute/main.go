// Command bodroute loads a dual-cost map file and reports the
// Pareto-optimal routes between two nodes, plus whether the chosen
// selection strategy forwards packets the way a decentralized network
// of routers following the same rule would.
package main

import (
	"fmt"
	"os"

	"github.com/birouted/biroute/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
