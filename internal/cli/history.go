package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/explorer"
)

// historyCommand creates the search history command.
func (c *CLI) historyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent search queries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runHistoryList(cmd)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Clear the search history",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runHistoryClear(cmd)
		},
	})

	return cmd
}

func (c *CLI) runHistoryList(cmd *cobra.Command) error {
	ctx := cmd.Context()
	st, err := c.newStore(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close(ctx)

	list, err := explorer.NewHistory(st).List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		printInfo("No searches yet")
		return nil
	}
	for i, query := range list {
		fmt.Println(StyleDim.Render(fmt.Sprintf("%2d.", i+1)) + " " + StyleValue.Render(query))
	}
	return nil
}

func (c *CLI) runHistoryClear(cmd *cobra.Command) error {
	ctx := cmd.Context()
	st, err := c.newStore(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close(ctx)

	if err := explorer.NewHistory(st).Clear(ctx); err != nil {
		return err
	}
	printSuccess("History cleared")
	return nil
}
