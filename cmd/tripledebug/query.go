package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arx-os/tripcore/internal/triple"
)

var queryMax int

var queryCmd = &cobra.Command{
	Use:   "query <subject> <predicate> <object>",
	Short: "Find triples matching a pattern",
	Long: `Find triples matching a pattern. Use "*" in any position as a
wildcard.

Example:
  tripledebug query 10 "*" "*"
  tripledebug query "*" 1 100`,
	Args: cobra.ExactArgs(3),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().IntVar(&queryMax, "max", 100, "maximum number of results")
}

func runQuery(cmd *cobra.Command, args []string) error {
	s, err := parseTermOrWildcard(args[0])
	if err != nil {
		return err
	}
	p, err := parseTermOrWildcard(args[1])
	if err != nil {
		return err
	}
	o, err := parseTermOrWildcard(args[2])
	if err != nil {
		return err
	}

	pattern := triple.Pattern{Subject: s, Predicate: p, Object: o}
	out := make([]uint32, queryMax)
	n := store.graph.FindPattern(pattern, out, queryMax)

	fmt.Println(tableHeaderStyle.Render(fmt.Sprintf("%-10s %-10s %-10s", "subject", "predicate", "object")))
	for i := 0; i < n; i++ {
		t := store.graph.TripleAt(out[i])
		fmt.Printf("%-10d %-10d %-10d\n", t.Subject, t.Predicate, t.Object)
	}
	fmt.Println(mutedStyle.Render(fmt.Sprintf("%d match(es)", n)))
	return nil
}
