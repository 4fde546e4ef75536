package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arx-os/tripcore/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate <node>",
	Short: "Validate a node against the registry's shapes",
	Long: `Validate checks a node ID against every shape in the registry whose
target class the node belongs to, reporting the first violation found
or a confirmation that all shapes pass. The registry starts empty and
no subcommand defines shapes, so every node currently reports ok.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	node, err := parseTermID(args[0], "node")
	if err != nil {
		return err
	}

	v := validator.New(store.registry, store.reader())
	outcome := v.Validate(node)

	if outcome.Ok {
		fmt.Println(successStyle.Render("✓ ok"))
		return nil
	}
	fmt.Println(errorStyle.Render(fmt.Sprintf(
		"✗ violation: shape %d, constraint #%d",
		outcome.ShapeID, outcome.ConstraintIdx,
	)))
	return nil
}
