package github

import "time"

// Wire shapes decoded from API response bodies, pre-validation.
// Field names follow GitHub's snake_case; optional fields are pointers so
// that absent and empty values stay distinguishable until mapping.

// userResponse is the wire shape of a user object. Owner objects embedded
// in repository listings carry only id, login, and avatar_url; the
// remaining fields decode to their zero values.
type userResponse struct {
	ID          int64   `json:"id"`
	Login       string  `json:"login"`
	Name        *string `json:"name"`
	AvatarURL   string  `json:"avatar_url"`
	Bio         *string `json:"bio"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
	PublicRepos int     `json:"public_repos"`
	PublicGists int     `json:"public_gists"`
	Location    *string `json:"location"`
}

// repoResponse is the wire shape of a repository object.
type repoResponse struct {
	ID              int64        `json:"id"`
	Name            string       `json:"name"`
	FullName        string       `json:"full_name"`
	Owner           userResponse `json:"owner"`
	Private         bool         `json:"private"`
	HTMLURL         string       `json:"html_url"`
	Description     *string      `json:"description"`
	Fork            bool         `json:"fork"`
	Language        *string      `json:"language"`
	ForksCount      int          `json:"forks_count"`
	StargazersCount int          `json:"stargazers_count"`
	WatchersCount   int          `json:"watchers_count"`
	DefaultBranch   string       `json:"default_branch"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
	Topics          []string     `json:"topics"`
}

// searchUsersResponse is the envelope returned by the user search endpoint.
// TotalCount is decoded but not surfaced to callers.
type searchUsersResponse struct {
	TotalCount int            `json:"total_count"`
	Items      []userResponse `json:"items"`
}
