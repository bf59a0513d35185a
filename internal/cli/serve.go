package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JosepEscobar/github-profile-explorer-sub000/internal/server"
)

// serveCommand creates the JSON API server command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API",
		Long: `Serve the explorer operations over HTTP.

Routes:
  GET /api/users/{username}
  GET /api/users/{username}/repos?search=&language=
  GET /api/users/{username}/languages
  GET /api/search/users?q=
  GET /healthz`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}

func (c *CLI) runServe(cmd *cobra.Command, addr string) error {
	if addr == "" {
		addr = c.cfg.Server.Addr
	}

	rc, err := c.newCache()
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer rc.Close()

	srv := server.New(c.newService(), server.Options{
		Cache:  rc,
		TTL:    c.cfg.Cache.TTL.Duration(),
		Logger: c.Logger,
	})
	return srv.ListenAndServe(cmd.Context(), addr)
}
