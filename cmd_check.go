package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/decker502/ratpet/pkg/config"
	"github.com/decker502/ratpet/pkg/game"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration and sprite sheet",
	Long: `Load the behavior and skin configs, then make sure the sprite sheet
exists and is large enough for every configured cell. Useful after
editing a custom --config or --skins file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd.OutOrStdout(), flagConfigPath, flagSkinsPath)
	},
}

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// runCheck 逐项检查，遇到第一个错误就返回
func runCheck(w io.Writer, behaviorPath, skinsPath string) error {
	ok := okStyle.Render("ok")
	fail := failStyle.Render("FAIL")

	if _, err := config.LoadBehaviorConfig(behaviorPath); err != nil {
		fmt.Fprintf(w, "%s  behavior %s\n", fail, behaviorPath)
		return err
	}
	fmt.Fprintf(w, "%s    behavior %s\n", ok, behaviorPath)

	skins, err := config.LoadSkinsConfig(skinsPath)
	if err != nil {
		fmt.Fprintf(w, "%s  skins %s\n", fail, skinsPath)
		return err
	}
	fmt.Fprintf(w, "%s    skins %s (%s)\n", ok, skinsPath, strings.Join(skins.Names(), ", "))

	img, err := game.CheckSheetImage(skins.Sheet)
	if err != nil {
		fmt.Fprintf(w, "%s  sheet %s\n", fail, skins.Sheet.Path)
		return err
	}
	fmt.Fprintf(w, "%s    sheet %s (%dx%d)\n", ok, skins.Sheet.Path, img.Width, img.Height)
	return nil
}
