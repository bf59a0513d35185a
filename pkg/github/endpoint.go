package github

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// DefaultBaseURL is the production GitHub API host.
// Tests substitute an httptest server URL.
const DefaultBaseURL = "https://api.github.com"

// Endpoint describes one API request: method, escaped path, and query
// parameters. Building an endpoint is pure and never fails; usernames and
// queries are percent-encoded, not rejected.
type Endpoint struct {
	Method string
	Path   string
	Query  url.Values
}

// URL joins the endpoint with a base URL into a fully-qualified request URL.
// Query parameters are encoded in sorted key order, so the result is
// deterministic for a given endpoint.
func (e Endpoint) URL(baseURL string) string {
	u := strings.TrimSuffix(baseURL, "/") + e.Path
	if len(e.Query) > 0 {
		u += "?" + e.Query.Encode()
	}
	return u
}

// UserEndpoint builds the request for a single user profile.
func UserEndpoint(username string) Endpoint {
	return Endpoint{
		Method: http.MethodGet,
		Path:   "/users/" + url.PathEscape(username),
	}
}

// UserRepositoriesEndpoint builds the request for one page of a user's
// repositories, sorted by most recent update. Range checks on page and
// perPage (GitHub caps perPage at 100) are the caller's responsibility.
func UserRepositoriesEndpoint(username string, page, perPage int) Endpoint {
	return Endpoint{
		Method: http.MethodGet,
		Path:   "/users/" + url.PathEscape(username) + "/repos",
		Query: url.Values{
			"page":     {strconv.Itoa(page)},
			"per_page": {strconv.Itoa(perPage)},
			"sort":     {"updated"},
		},
	}
}

// SearchUsersEndpoint builds the request for one page of a user search.
func SearchUsersEndpoint(query string, page, perPage int) Endpoint {
	return Endpoint{
		Method: http.MethodGet,
		Path:   "/search/users",
		Query: url.Values{
			"q":        {query},
			"page":     {strconv.Itoa(page)},
			"per_page": {strconv.Itoa(perPage)},
		},
	}
}
