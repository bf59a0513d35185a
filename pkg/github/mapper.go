package github

import (
	"net/url"

	apperrors "github.com/JosepEscobar/github-profile-explorer-sub000/pkg/errors"
)

// Mapping converts decoded wire shapes into validated domain entities.
// Validation failures are data-integrity failures and carry the
// DECODING_ERROR code; a degraded entity is never constructed.

// mapUser validates a user DTO into a domain User.
// Partial owner shapes are accepted: the count fields default to zero and
// the optional fields stay nil, but login and a parseable absolute avatar
// URL are always required.
func mapUser(dto userResponse) (User, error) {
	if dto.Login == "" {
		return User{}, apperrors.New(apperrors.ErrCodeDecoding, "user %d has no login", dto.ID)
	}
	if err := validateAbsoluteURL(dto.AvatarURL); err != nil {
		return User{}, apperrors.Wrap(apperrors.ErrCodeDecoding, err, "user %q has invalid avatar URL %q", dto.Login, dto.AvatarURL)
	}
	return User{
		ID:          dto.ID,
		Login:       dto.Login,
		Name:        dto.Name,
		AvatarURL:   dto.AvatarURL,
		Bio:         dto.Bio,
		Followers:   dto.Followers,
		Following:   dto.Following,
		PublicRepos: dto.PublicRepos,
		PublicGists: dto.PublicGists,
		Location:    dto.Location,
	}, nil
}

// mapRepository validates a repository DTO into a domain Repository.
// A missing topics array maps to an empty slice, never nil.
func mapRepository(dto repoResponse) (Repository, error) {
	if err := validateAbsoluteURL(dto.HTMLURL); err != nil {
		return Repository{}, apperrors.Wrap(apperrors.ErrCodeDecoding, err, "repository %q has invalid HTML URL %q", dto.FullName, dto.HTMLURL)
	}
	owner, err := mapUser(dto.Owner)
	if err != nil {
		return Repository{}, err
	}
	topics := dto.Topics
	if topics == nil {
		topics = []string{}
	}
	return Repository{
		ID:              dto.ID,
		Name:            dto.Name,
		FullName:        dto.FullName,
		Owner:           owner,
		Private:         dto.Private,
		HTMLURL:         dto.HTMLURL,
		Description:     dto.Description,
		Fork:            dto.Fork,
		Language:        dto.Language,
		ForksCount:      dto.ForksCount,
		StargazersCount: dto.StargazersCount,
		WatchersCount:   dto.WatchersCount,
		DefaultBranch:   dto.DefaultBranch,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
		Topics:          topics,
	}, nil
}

// mapRepositories maps a DTO slice all-or-nothing: the first invalid
// element fails the whole batch and no partial result is returned.
func mapRepositories(dtos []repoResponse) ([]Repository, error) {
	repos := make([]Repository, 0, len(dtos))
	for _, dto := range dtos {
		repo, err := mapRepository(dto)
		if err != nil {
			return nil, err
		}
		repos = append(repos, repo)
	}
	return repos, nil
}

// mapUsers maps the items of a search envelope, all-or-nothing.
func mapUsers(dtos []userResponse) ([]User, error) {
	users := make([]User, 0, len(dtos))
	for _, dto := range dtos {
		user, err := mapUser(dto)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// validateAbsoluteURL reports an error unless raw parses as an absolute URL
// with a host.
func validateAbsoluteURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if !u.IsAbs() || u.Host == "" {
		return apperrors.New(apperrors.ErrCodeDecoding, "not an absolute URL")
	}
	return nil
}
