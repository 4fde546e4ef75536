package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arx-os/tripcore/internal/graph"
	"github.com/arx-os/tripcore/internal/triple"
)

var (
	insertKind string
)

var insertCmd = &cobra.Command{
	Use:   "insert <subject> <predicate> <object>",
	Short: "Insert a single triple",
	Long: `Insert a triple identified by three numeric term IDs.

Example:
  tripledebug insert 10 1 100 --kind iri`,
	Args: cobra.ExactArgs(3),
	RunE: runInsert,
}

func init() {
	insertCmd.Flags().StringVar(&insertKind, "kind", "iri", "term kind of the object: iri, literal, blank")
}

func runInsert(cmd *cobra.Command, args []string) error {
	s, p, o, err := parseSPO(args)
	if err != nil {
		return err
	}

	kind, err := parseKind(insertKind)
	if err != nil {
		return err
	}

	res, err := store.insert(s, p, o, kind)
	if err != nil {
		return err
	}

	switch res {
	case graph.Inserted:
		fmt.Println(successStyle.Render(fmt.Sprintf("✓ inserted (%d, %d, %d)", s, p, o)))
	case graph.Duplicate:
		fmt.Println(mutedStyle.Render(fmt.Sprintf("= already present (%d, %d, %d)", s, p, o)))
	case graph.Full:
		fmt.Println(errorStyle.Render("✗ graph at capacity"))
	}
	return nil
}

func parseKind(s string) (triple.TermKind, error) {
	switch s {
	case "iri":
		return triple.IRI, nil
	case "literal":
		return triple.Literal, nil
	case "blank":
		return triple.Blank, nil
	default:
		return 0, fmt.Errorf("unknown term kind %q (want iri, literal, or blank)", s)
	}
}
