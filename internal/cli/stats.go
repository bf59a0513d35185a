package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/cache"
	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/chart"
	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/github"
)

// statsCommand creates the language statistics command.
func (c *CLI) statsCommand() *cobra.Command {
	var (
		dot    bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "stats <login>",
		Short: "Show a user's language distribution",
		Long: `Aggregate the languages of a user's repositories, most used first.

With --dot the distribution is emitted as a Graphviz DOT graph; with
--output file.svg it is rendered to SVG.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStats(cmd, args[0], dot, output)
		},
	}

	cmd.Flags().BoolVar(&dot, "dot", false, "emit the distribution as Graphviz DOT")
	cmd.Flags().StringVarP(&output, "output", "o", "", "render the distribution to an SVG file")

	return cmd
}

func (c *CLI) runStats(cmd *cobra.Command, username string, dot bool, output string) error {
	ctx := cmd.Context()
	svc := c.newService()
	rc, err := c.newCache()
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer rc.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Aggregating languages of %s...", username))
	spinner.Start()
	stats, cached, err := fetchCached(ctx, c, rc, cache.Key("stats", username), "Aggregated languages",
		func(ctx context.Context) ([]github.LanguageStat, error) {
			return svc.FetchLanguageStats(ctx, username)
		})
	spinner.Stop()
	if err != nil {
		return err
	}

	if len(stats) == 0 {
		printInfo("No languages found for %s", username)
		return nil
	}

	if dot {
		fmt.Print(chart.ToDOT(username, stats))
		return nil
	}
	if output != "" {
		svg, err := chart.RenderSVG(ctx, chart.ToDOT(username, stats))
		if err != nil {
			return fmt.Errorf("render chart: %w", err)
		}
		if err := os.WriteFile(output, svg, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		printSuccess("Chart written")
		printDetail("File: %s", output)
		return nil
	}

	printStatsTable(stats)
	printFetchStatus(len(stats), "languages", cached)
	return nil
}

// printStatsTable prints each language with a proportional bar.
func printStatsTable(stats []github.LanguageStat) {
	maxCount := stats[0].Count
	for _, s := range stats {
		if s.Count > maxCount {
			maxCount = s.Count
		}
	}
	for _, s := range stats {
		bar := strings.Repeat("█", barLength(s.Count, maxCount))
		fmt.Printf("%s %s %s\n",
			StyleValue.Render(fmt.Sprintf("%-15s", s.Language)),
			StyleHighlight.Render(bar),
			StyleDim.Render(fmt.Sprintf("%d", s.Count)),
		)
	}
}

// barLength scales a count onto a 30-column bar, keeping nonzero counts
// visible.
func barLength(count, maxCount int) int {
	if maxCount == 0 {
		return 0
	}
	n := count * 30 / maxCount
	if n == 0 {
		n = 1
	}
	return n
}
