package explorer

import (
	"net/url"
	"strings"
)

const webBaseURL = "https://github.com"

// ProfileURL returns the github.com page of a user profile.
func ProfileURL(username string) string {
	return webBaseURL + "/" + url.PathEscape(username)
}

// RepositoryURL returns the github.com page of a repository given its
// owner/name full name. The slash separating the segments is kept.
func RepositoryURL(fullName string) string {
	owner, name, found := strings.Cut(fullName, "/")
	if !found {
		return webBaseURL + "/" + url.PathEscape(fullName)
	}
	return webBaseURL + "/" + url.PathEscape(owner) + "/" + url.PathEscape(name)
}
