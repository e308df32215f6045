package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/decker502/ratpet/pkg/app"
)

var (
	flagSkin        string
	flagScale       float64
	flagSeed        uint64
	flagPassthrough bool
	flagMute        bool
	flagVolume      float64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the pet (default command)",
	Long: `Open the pet window. Flags override the saved settings for this run
and are remembered for the next one.

Examples:
  ratpet run
  ratpet run --skin sewer_rat --scale 3
  ratpet run --seed 42 --passthrough
  ratpet run --volume 0.3
  ratpet run --mute=false`,
	Args: cobra.NoArgs,
	RunE: runPet,
}

func init() {
	addRunFlags(runCmd)
}

// addRunFlags 根命令和 run 子命令共用同一组参数
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagSkin, "skin", "", "Skin name (see 'ratpet skins')")
	cmd.Flags().Float64Var(&flagScale, "scale", 0, "Window scale factor (0 = saved or default)")
	cmd.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed for wander targets (default random)")
	cmd.Flags().BoolVar(&flagPassthrough, "passthrough", false, "Let mouse clicks pass through the pet")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Mute the squeak (--mute=false unmutes)")
	cmd.Flags().Float64Var(&flagVolume, "volume", 0, "Squeak volume 0.0-1.0 (default saved)")
}

func runPet(cmd *cobra.Command, args []string) error {
	cfg := app.Config{
		Skin:         flagSkin,
		Scale:        flagScale,
		Seed:         flagSeed,
		HasSeed:      cmd.Flags().Changed("seed"),
		Passthrough:  flagPassthrough,
		Mute:         flagMute,
		HasMute:      cmd.Flags().Changed("mute"),
		Volume:       flagVolume,
		HasVolume:    cmd.Flags().Changed("volume"),
		BehaviorPath: flagConfigPath,
		SkinsPath:    flagSkinsPath,
		DBPath:       flagDBPath,
	}

	pet, err := app.NewApp(cfg)
	if err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	defer pet.Close()

	pet.ConfigureWindow()
	if err := ebiten.RunGameWithOptions(pet, pet.RunGameOptions()); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Errorf("[Main] game loop: %v", err)
		return err
	}
	return nil
}
