// Package explorer implements the application use cases on top of the
// GitHub data-access client: input validation, delegation, favorites, and
// search history. Validation failures carry INVALID_INPUT and are raised
// before any network call is made.
package explorer

import (
	"context"
	"strings"

	apperrors "github.com/JosepEscobar/github-profile-explorer-sub000/pkg/errors"
	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/github"
)

// Fetcher is the slice of the data-access client the use cases need.
// *github.Client satisfies it.
type Fetcher interface {
	FetchUser(ctx context.Context, username string) (github.User, error)
	FetchUserRepositories(ctx context.Context, username string) ([]github.Repository, error)
	SearchUsers(ctx context.Context, query string) ([]github.User, error)
}

// Service wraps a Fetcher with use-case validation.
type Service struct {
	client Fetcher
}

// NewService creates the use-case service over the given client.
func NewService(client Fetcher) *Service {
	return &Service{client: client}
}

// ValidateUsername checks a username argument. The messages are part of the
// application's contract and shown verbatim to users.
func ValidateUsername(username string) error {
	if username == "" {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "Username cannot be empty")
	}
	if strings.Contains(username, " ") {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "Username cannot contain spaces")
	}
	return nil
}

// ValidateSearchQuery checks a user search query.
func ValidateSearchQuery(query string) error {
	if query == "" {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "Search query cannot be empty")
	}
	return nil
}

// FetchUser validates the username and fetches the profile.
func (s *Service) FetchUser(ctx context.Context, username string) (github.User, error) {
	if err := ValidateUsername(username); err != nil {
		return github.User{}, err
	}
	return s.client.FetchUser(ctx, username)
}

// FetchUserRepositories validates the username and fetches every repository.
func (s *Service) FetchUserRepositories(ctx context.Context, username string) ([]github.Repository, error) {
	if err := ValidateUsername(username); err != nil {
		return nil, err
	}
	return s.client.FetchUserRepositories(ctx, username)
}

// SearchUsers validates the query and searches for matching users.
func (s *Service) SearchUsers(ctx context.Context, query string) ([]github.User, error) {
	if err := ValidateSearchQuery(query); err != nil {
		return nil, err
	}
	return s.client.SearchUsers(ctx, query)
}

// FetchFilteredRepositories fetches a user's repositories and applies the
// text and language filters client-side.
func (s *Service) FetchFilteredRepositories(ctx context.Context, username, text, language string) ([]github.Repository, error) {
	repos, err := s.FetchUserRepositories(ctx, username)
	if err != nil {
		return nil, err
	}
	return github.FilterBySearchTextAndLanguage(repos, text, language), nil
}

// FetchLanguageStats fetches a user's repositories and aggregates their
// language distribution.
func (s *Service) FetchLanguageStats(ctx context.Context, username string) ([]github.LanguageStat, error) {
	repos, err := s.FetchUserRepositories(ctx, username)
	if err != nil {
		return nil, err
	}
	return github.CalculateLanguageStats(repos), nil
}

// FetchUniqueLanguages fetches a user's repositories and lists the distinct
// languages, sorted.
func (s *Service) FetchUniqueLanguages(ctx context.Context, username string) ([]string, error) {
	repos, err := s.FetchUserRepositories(ctx, username)
	if err != nil {
		return nil, err
	}
	return github.ExtractUniqueLanguages(repos), nil
}
