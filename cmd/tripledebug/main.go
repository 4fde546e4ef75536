// Command tripledebug is a small inspection tool for a tripcore Graph:
// insert fixture triples, run pattern queries, validate nodes against
// shape definitions, and print engine stats. It is deliberately thin —
// no SPARQL parsing, no shell, no REPL — a debug aid, not a query
// language.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arx-os/tripcore/internal/engineconfig"
)

var (
	// Version information (set during build).
	Version = "dev"

	cfgPath   string
	sessionID string
	log       *zap.Logger
	store     *debugStore
)

var rootCmd = &cobra.Command{
	Use:   "tripledebug",
	Short: "Inspect and exercise a tripcore triple engine",
	Long: `tripledebug builds a tripcore Graph and ShapeRegistry from an
engine config file (--config) and lets you poke at them from the
command line, one invocation at a time:

  • insert   - add a single triple by term ID
  • query    - run a pattern match (subject/predicate/object, any wildcarded)
  • validate - check a node against the shape registry (starts empty)
  • stats    - print hit/miss/SIMD counters, optionally as a live view

This is a debug tool, not a query language: there is no SPARQL shell,
and nothing persists between invocations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		log, err = newLogger()
		if err != nil {
			return err
		}
		sessionID = uuid.NewString()
		log = log.With(zap.String("session_id", sessionID))
		loader := engineconfig.NewLoader(cfgPath, log)
		cfg, err := loader.Load()
		if err != nil {
			return err
		}
		store, err = newDebugStore(cfg)
		return err
	},
}

func newLogger() (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	zcfg.DisableStacktrace = true
	return zcfg.Build()
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "tripledebug.yaml", "engine config file")

	rootCmd.AddCommand(insertCmd, queryCmd, validateCmd, statsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}
}
