package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/cache"
	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/explorer"
	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/github"
)

// searchCommand creates the user search command.
func (c *CLI) searchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search GitHub users",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSearch(cmd, args[0])
		},
	}
}

func (c *CLI) runSearch(cmd *cobra.Command, query string) error {
	ctx := cmd.Context()
	svc := c.newService()
	rc, err := c.newCache()
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer rc.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Searching for %q...", query))
	spinner.Start()
	users, cached, err := fetchCached(ctx, c, rc, cache.Key("search", query), "Searched users",
		func(ctx context.Context) ([]github.User, error) {
			return svc.SearchUsers(ctx, query)
		})
	spinner.Stop()
	if err != nil {
		return err
	}

	// Record only queries that actually ran.
	if st, serr := c.newStore(ctx); serr == nil {
		if herr := explorer.NewHistory(st).Record(ctx, query); herr != nil {
			c.Logger.Debug("record history failed", "err", herr)
		}
		st.Close(ctx)
	} else {
		printWarning("Search history unavailable")
		c.Logger.Debug("open store failed", "err", serr)
	}

	if len(users) == 0 {
		printInfo("No users found for %q", query)
		return nil
	}

	for _, u := range users {
		fmt.Println(StyleHighlight.Render(u.Login) + " " + StyleDim.Render(explorer.ProfileURL(u.Login)))
	}
	printFetchStatus(len(users), "users", cached)
	return nil
}
