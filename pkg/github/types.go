package github

import "time"

// User represents a GitHub user profile.
// Instances are immutable once mapped; identity is the Login field.
type User struct {
	ID          int64   `json:"id"`
	Login       string  `json:"login"`
	Name        *string `json:"name,omitempty"`
	AvatarURL   string  `json:"avatar_url"`
	Bio         *string `json:"bio,omitempty"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`
	PublicRepos int     `json:"public_repos"`
	PublicGists int     `json:"public_gists"`
	Location    *string `json:"location,omitempty"`
}

// Repository represents a GitHub repository.
// Identity is the ID field. The Owner may be partially populated when the
// repository came from a listing (GitHub embeds only id/login/avatar_url).
type Repository struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	Owner           User      `json:"owner"`
	Private         bool      `json:"private"`
	HTMLURL         string    `json:"html_url"`
	Description     *string   `json:"description,omitempty"`
	Fork            bool      `json:"fork"`
	Language        *string   `json:"language,omitempty"`
	ForksCount      int       `json:"forks_count"`
	StargazersCount int       `json:"stargazers_count"`
	WatchersCount   int       `json:"watchers_count"`
	DefaultBranch   string    `json:"default_branch"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Topics          []string  `json:"topics"`
}

// LanguageStat is one bucket of a language-frequency aggregation.
// Produced fresh on each call to [CalculateLanguageStats]; never persisted.
type LanguageStat struct {
	Language string `json:"language"`
	Count    int    `json:"count"`
}
