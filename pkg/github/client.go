package github

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// Page sizes used by the client. GitHub caps per_page at 100 for listing
// endpoints; user search defaults to 30 results.
const (
	reposPerPage  = 100
	searchPerPage = 30
)

// Client is the data-access facade over endpoint building, transport, and
// mapping. Each call is independent: nothing is cached or shared between
// fetches beyond the underlying HTTP client.
type Client struct {
	transport *Transport
}

// NewClient creates a client against the given base URL.
// Pass "" for the production host, 0 for the default timeout, and nil for
// the default logger.
func NewClient(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	return &Client{transport: NewTransport(baseURL, timeout, logger)}
}

// FetchUser retrieves a single user profile.
func (c *Client) FetchUser(ctx context.Context, username string) (User, error) {
	var dto userResponse
	if err := c.transport.Do(ctx, UserEndpoint(username), &dto); err != nil {
		return User{}, err
	}
	return mapUser(dto)
}

// FetchUserRepositories retrieves every repository of a user, paginating
// transparently. Pages are fetched strictly sequentially: page n+1 is only
// requested after page n succeeded, so at most one request is in flight.
// The listing stops when a page returns fewer than the page size.
//
// The operation is all-or-nothing: an error on any page (including a
// cancelled context) aborts the fetch and discards accumulated pages, and
// mapping the accumulated list fails as a whole on the first invalid entry.
func (c *Client) FetchUserRepositories(ctx context.Context, username string) ([]Repository, error) {
	var accumulated []repoResponse
	for page := 1; ; page++ {
		var batch []repoResponse
		ep := UserRepositoriesEndpoint(username, page, reposPerPage)
		if err := c.transport.Do(ctx, ep, &batch); err != nil {
			return nil, err
		}
		accumulated = append(accumulated, batch...)
		if len(batch) < reposPerPage {
			break
		}
	}
	return mapRepositories(accumulated)
}

// SearchUsers retrieves the first page of users matching the query.
func (c *Client) SearchUsers(ctx context.Context, query string) ([]User, error) {
	var envelope searchUsersResponse
	if err := c.transport.Do(ctx, SearchUsersEndpoint(query, 1, searchPerPage), &envelope); err != nil {
		return nil, err
	}
	return mapUsers(envelope.Items)
}
