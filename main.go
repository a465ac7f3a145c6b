// shifty is a side-scrolling zombie shooter.
//
// Usage:
//
//	shifty                   - Play the campaign from the first level
//	shifty --level map2      - Start from a specific level
//	shifty scores            - Show the best recorded scores
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.shifty/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagLevel  string
	flagSeed   int64
	flagDBPath string
	flagDebug  bool
	flagTimer  int
	flagAssets string
	flagBase   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shifty",
	Short: "Shifty - shoot your way through the zombie levels",
	Long: `Shifty is a side-scrolling shooter. Clear each level before the
timer runs out, collect keys to open doors and switch off the lasers.

Examples:
  shifty
  shifty --level map3 --timer 120
  shifty scores`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogger,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shifty/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging and collision overlays")

	rootCmd.Flags().StringVar(&flagLevel, "level", "", "Level to start from (default: first campaign level)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().IntVar(&flagTimer, "timer", 0, "Level timer in seconds (0 = tuning default)")
	rootCmd.Flags().StringVar(&flagAssets, "assets", "assets", "Directory holding sprites and sounds")
	rootCmd.Flags().BoolVarP(&flagBase, "monitor", "m", false, "Use the base monitor instead of the primary one")

	rootCmd.AddCommand(scoresCmd)
}

func setupLogger(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "shifty",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	log.SetDefault(logger)
	return nil
}
