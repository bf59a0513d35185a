package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/cache"
	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/github"
)

// reposCommand creates the repository listing command.
func (c *CLI) reposCommand() *cobra.Command {
	var (
		search      string
		language    string
		forksOnly   bool
		noForks     bool
		interactive bool
		open        string
	)

	cmd := &cobra.Command{
		Use:   "repos <login>",
		Short: "List a user's repositories",
		Long: `List every public repository of a user, with client-side filtering.

Text search (--search) matches name, description, and language
case-insensitively. Language filtering (--language) is an exact,
case-sensitive match.

Examples:
  ghexplorer repos octocat
  ghexplorer repos octocat --language Go
  ghexplorer repos octocat --search cli --no-forks
  ghexplorer repos octocat --interactive`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if forksOnly && noForks {
				return fmt.Errorf("--forks and --no-forks are mutually exclusive")
			}
			return c.runRepos(cmd, args[0], reposFlags{
				search:      search,
				language:    language,
				forksOnly:   forksOnly,
				noForks:     noForks,
				interactive: interactive,
				open:        open,
			})
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "filter by text on name, description, language")
	cmd.Flags().StringVarP(&language, "language", "l", "", "filter by exact language")
	cmd.Flags().BoolVar(&forksOnly, "forks", false, "show only forks")
	cmd.Flags().BoolVar(&noForks, "no-forks", false, "hide forks")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse repositories interactively")
	cmd.Flags().StringVar(&open, "open", "", "open the named repository in the browser")

	return cmd
}

type reposFlags struct {
	search      string
	language    string
	forksOnly   bool
	noForks     bool
	interactive bool
	open        string
}

func (c *CLI) runRepos(cmd *cobra.Command, username string, flags reposFlags) error {
	ctx := cmd.Context()
	svc := c.newService()
	rc, err := c.newCache()
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer rc.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Fetching repositories of %s...", username))
	spinner.Start()
	repos, cached, err := fetchCached(ctx, c, rc, cache.Key("repos", username), "Fetched repositories",
		func(ctx context.Context) ([]github.Repository, error) {
			return svc.FetchUserRepositories(ctx, username)
		})
	if err != nil {
		spinner.StopWithError("Failed to fetch repositories")
		return err
	}
	spinner.Stop()

	repos = github.FilterBySearchTextAndLanguage(repos, flags.search, flags.language)
	repos = filterForks(repos, flags.forksOnly, flags.noForks)

	if flags.open != "" {
		return c.openRepo(repos, flags.open)
	}

	if len(repos) == 0 {
		printInfo("No repositories match")
		return nil
	}

	if flags.interactive {
		return c.browseRepos(repos)
	}

	printRepoTable(repos)
	printFetchStatus(len(repos), "repositories", cached)
	return nil
}

// filterForks applies the fork visibility flags.
func filterForks(repos []github.Repository, forksOnly, noForks bool) []github.Repository {
	if !forksOnly && !noForks {
		return repos
	}
	filtered := make([]github.Repository, 0, len(repos))
	for _, r := range repos {
		if r.Fork == forksOnly {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// openRepo prints and opens the HTML URL of the named repository.
func (c *CLI) openRepo(repos []github.Repository, name string) error {
	for _, r := range repos {
		if r.Name == name || r.FullName == name {
			printLink(r.HTMLURL)
			openInBrowser(c.Logger, r.HTMLURL)
			return nil
		}
	}
	return fmt.Errorf("repository %q not in the result set", name)
}

// browseRepos runs the interactive bubbletea list.
func (c *CLI) browseRepos(repos []github.Repository) error {
	m := NewRepoListModel(repos)
	p := tea.NewProgram(m)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	fm, ok := finalModel.(RepoListModel)
	if !ok || fm.Selected == nil {
		printDetail("No selection made")
		return nil
	}

	printLink(fm.Selected.HTMLURL)
	openInBrowser(c.Logger, fm.Selected.HTMLURL)
	return nil
}

// printRepoTable prints repositories one per line with language and stars.
func printRepoTable(repos []github.Repository) {
	for _, r := range repos {
		lang := "—"
		if r.Language != nil {
			lang = *r.Language
		}
		line := StyleHighlight.Render(r.Name)
		if r.Fork {
			line += " " + StyleDim.Render("(fork)")
		}
		line += " " + StyleDim.Render(fmt.Sprintf("· %s · %d stars", lang, r.StargazersCount))
		fmt.Println(line)
		if r.Description != nil && *r.Description != "" {
			printDetail("%s", strings.TrimSpace(*r.Description))
		}
	}
}
