package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/decker502/ratpet/pkg/config"
)

var skinsCmd = &cobra.Command{
	Use:   "skins",
	Short: "List available skins",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		skins, err := config.LoadSkinsConfig(flagSkinsPath)
		if err != nil {
			return err
		}
		renderSkins(cmd.OutOrStdout(), skins)
		return nil
	},
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	defaultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func renderSkins(w io.Writer, skins *config.SkinsConfig) {
	fmt.Fprintln(w, titleStyle.Render("Skins"))
	fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("sheet %s, %dx%d cells", skins.Sheet.Path, skins.Sheet.CellWidth, skins.Sheet.CellHeight)))
	fmt.Fprintln(w)

	for _, skin := range skins.Skins {
		name := skin.Name
		if name == skins.DefaultSkin {
			name = defaultStyle.Render(name + " (default)")
		}
		fmt.Fprintf(w, "  %s\n", name)
		fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("    idle %d frames, walk %d frames, fly %d frames",
			skin.Idle.FrameCount(), skin.Walk.FrameCount(), skin.Fly.FrameCount())))
	}
}
