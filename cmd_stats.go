package main

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/decker502/ratpet/internal/storage"
)

var flagStatsLimit int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the activity journal",
	Long: `Summarize every recorded session: time on screen, distance travelled
and how often the rat was clicked, sent wandering or reskinned.

Examples:
  ratpet stats
  ratpet stats --db /tmp/journal.db --limit 5`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStats(cmd.OutOrStdout(), flagDBPath, flagStatsLimit)
	},
}

// errJournalDisabled 与 run 一致：--db "" 表示不记录，也就没有可读的日志
var errJournalDisabled = errors.New(`journal disabled (--db ""), nothing to show`)

func runStats(w io.Writer, dbPath string, limit int) error {
	if dbPath == "" {
		return errJournalDisabled
	}
	journal, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("cannot open journal: %w", err)
	}
	defer journal.Close()

	totals, err := journal.Totals()
	if err != nil {
		return err
	}
	sessions, err := journal.RecentSessions(limit)
	if err != nil {
		return err
	}
	renderStats(w, totals, sessions)
	return nil
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 10, "Number of recent sessions to show")
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func renderStats(w io.Writer, totals storage.Totals, sessions []storage.Session) {
	fmt.Fprintln(w, titleStyle.Render("ratpet journal"))
	fmt.Fprintln(w)

	if totals.Sessions == 0 {
		fmt.Fprintln(w, "No sessions recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'ratpet' to let the rat out!")
		return
	}

	fmt.Fprintf(w, "Sessions:  %d\n", totals.Sessions)
	fmt.Fprintf(w, "On screen: %s\n", totals.Duration.Round(time.Second))
	fmt.Fprintf(w, "Distance:  %s\n", formatDistance(totals.Distance))

	if len(totals.ByKind) > 0 {
		kinds := make([]string, 0, len(totals.ByKind))
		for kind := range totals.ByKind {
			kinds = append(kinds, kind)
		}
		sort.Strings(kinds)
		fmt.Fprintln(w)
		for _, kind := range kinds {
			fmt.Fprintf(w, "  %-14s %d\n", kind, totals.ByKind[kind])
		}
	}
	fmt.Fprintln(w)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "Started", "Skin", "Duration", "Distance", "Events").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, s := range sessions {
		duration := "running"
		if !s.EndedAt.IsZero() {
			duration = s.Duration().Round(time.Second).String()
		}
		t.Row(
			fmt.Sprint(s.ID),
			s.StartedAt.Format("2006-01-02 15:04"),
			s.Skin,
			duration,
			formatDistance(s.Distance),
			fmt.Sprint(s.Events),
		)
	}
	fmt.Fprintln(w, t.Render())
}

// formatDistance 像素距离，超过 1000 用 k 表示
func formatDistance(px float64) string {
	if px >= 1000 {
		return fmt.Sprintf("%.1fk px", px/1000)
	}
	return fmt.Sprintf("%.0f px", px)
}
