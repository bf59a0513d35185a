package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/cache"
	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/explorer"
	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/github"
)

// userCommand creates the user profile command.
func (c *CLI) userCommand() *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:   "user <login>",
		Short: "Show a GitHub user's profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runUser(cmd, args[0], open)
		},
	}

	cmd.Flags().BoolVar(&open, "open", false, "open the profile in the browser")

	return cmd
}

func (c *CLI) runUser(cmd *cobra.Command, username string, open bool) error {
	ctx := cmd.Context()
	svc := c.newService()
	rc, err := c.newCache()
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer rc.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Fetching %s...", username))
	spinner.Start()
	user, cached, err := fetchCached(ctx, c, rc, cache.Key("user", username), "Fetched profile",
		func(ctx context.Context) (github.User, error) {
			return svc.FetchUser(ctx, username)
		})
	spinner.Stop()
	if err != nil {
		return err
	}

	st, err := c.newStore(ctx)
	starred := false
	if err == nil {
		defer st.Close(ctx)
		starred, _ = explorer.NewFavorites(st).Contains(ctx, user.Login)
	}

	printUserCard(user, starred)
	printFetchStatus(1, "profile", cached)
	profileURL := explorer.ProfileURL(user.Login)
	printLink(profileURL)
	if open {
		openInBrowser(c.Logger, profileURL)
	}
	return nil
}

// printUserCard prints the profile fields as a labeled card.
func printUserCard(user github.User, starred bool) {
	title := user.Login
	if user.Name != nil {
		title = fmt.Sprintf("%s (%s)", *user.Name, user.Login)
	}
	if starred {
		title += " " + StyleSuccess.Render(iconStar)
	}
	fmt.Println(StyleTitle.Render(title))
	printNewline()

	if user.Bio != nil {
		printDetail("%s", *user.Bio)
		printNewline()
	}
	if user.Location != nil {
		printKeyValue("Location", *user.Location)
	}
	printKeyValue("Followers", fmt.Sprintf("%d", user.Followers))
	printKeyValue("Following", fmt.Sprintf("%d", user.Following))
	printKeyValue("Repos", fmt.Sprintf("%d", user.PublicRepos))
	printKeyValue("Gists", fmt.Sprintf("%d", user.PublicGists))
}
