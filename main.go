// ratpet is a desktop pet: a small transparent window with a pixel rat
// that follows the mouse cursor around the screen.
//
// Usage:
//
//	ratpet [run]      - Start the pet (default)
//	ratpet skins      - List available skins
//	ratpet stats      - Show the activity journal
//	ratpet check      - Validate configuration and sprite sheet
//
// Global flags:
//
//	--config <path>   - Behavior config (default: embedded data/pet_behavior.yaml)
//	--skins <path>    - Skin config (default: embedded data/skins.yaml)
//	--db <path>       - Journal database (default: ~/.ratpet/journal.db)
//	--verbose         - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/decker502/ratpet/internal/storage"
	"github.com/decker502/ratpet/pkg/app"
	"github.com/decker502/ratpet/pkg/config"
	"github.com/decker502/ratpet/pkg/embedded"
)

var (
	// Global flags
	flagConfigPath string
	flagSkinsPath  string
	flagDBPath     string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ratpet",
	Short: "ratpet - a pixel rat that follows your mouse",
	Long: `ratpet puts a small animated rat on your desktop. It follows the cursor,
rides along while you hold the left button, and wanders off on its own
after a double-click.

Controls:
  left click     cycle animation lock (auto, idle, walk, fly)
  double click   toggle wander mode
  right click, S next skin
  D              debug overlay
  M              mute
  Esc            quit

Examples:
  ratpet
  ratpet run --skin lab_rat --scale 3
  ratpet skins
  ratpet stats`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		embedded.Init(assetsFS, dataFS)
		app.ConfigureLogging(flagVerbose)
	},
	RunE: runPet,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", config.DefaultBehaviorPath, "Path to behavior config")
	rootCmd.PersistentFlags().StringVar(&flagSkinsPath, "skins", config.DefaultSkinsPath, "Path to skin config")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to journal database (empty disables the journal)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	addRunFlags(rootCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(skinsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(checkCmd)
}
