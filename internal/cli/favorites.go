package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/explorer"
)

// favoritesCommand creates the favorites management command.
func (c *CLI) favoritesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage favorite users",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFavoritesList(cmd)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <login>",
		Short: "Add a user to the favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFavoritesAdd(cmd, args[0])
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "remove <login>",
		Short: "Remove a user from the favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFavoritesRemove(cmd, args[0])
		},
	})

	return cmd
}

func (c *CLI) runFavoritesList(cmd *cobra.Command) error {
	ctx := cmd.Context()
	st, err := c.newStore(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close(ctx)

	list, err := explorer.NewFavorites(st).List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		printInfo("No favorites yet")
		printDetail("Add one: %s favorites add <login>", appName)
		return nil
	}
	for _, login := range list {
		fmt.Println(StyleSuccess.Render(iconStar) + " " + StyleHighlight.Render(login) +
			" " + StyleDim.Render(explorer.ProfileURL(login)))
	}
	return nil
}

func (c *CLI) runFavoritesAdd(cmd *cobra.Command, login string) error {
	ctx := cmd.Context()
	st, err := c.newStore(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close(ctx)

	if err := explorer.NewFavorites(st).Add(ctx, login); err != nil {
		return err
	}
	printSuccess("Added %s to favorites", login)
	return nil
}

func (c *CLI) runFavoritesRemove(cmd *cobra.Command, login string) error {
	ctx := cmd.Context()
	st, err := c.newStore(ctx)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close(ctx)

	if err := explorer.NewFavorites(st).Remove(ctx, login); err != nil {
		return err
	}
	printSuccess("Removed %s from favorites", login)
	return nil
}
