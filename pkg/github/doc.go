// Package github provides a typed client for the GitHub REST API.
//
// # Overview
//
// This package is the data-access core of the explorer: it builds request
// endpoints, executes them over a classifying HTTP transport, validates the
// wire payloads into domain entities, and offers pure in-memory query
// operations over fetched repository collections.
//
// # Usage
//
//	client := github.NewClient(github.DefaultBaseURL, 0, logger)
//
//	user, err := client.FetchUser(ctx, "octocat")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	repos, err := client.FetchUserRepositories(ctx, "octocat")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	stats := github.CalculateLanguageStats(repos)
//
// # Pagination
//
// [Client.FetchUserRepositories] pages through the repository listing
// transparently, 100 entries at a time, strictly sequentially. The fetch is
// all-or-nothing: an error on any page aborts the whole operation and no
// partial list is ever returned.
//
// # Error Classification
//
// Every failure carries a code from the errors package:
//
//   - NETWORK_ERROR: connectivity, timeout, DNS, TLS
//   - USER_NOT_FOUND: HTTP 404
//   - SERVER_ERROR: any other non-2xx status (status kept for diagnostics)
//   - DECODING_ERROR: undecodable body or schema violation (e.g. a
//     repository whose html_url does not parse as an absolute URL)
//
// The client never retries and never caches; both are caller concerns.
//
// # Authentication
//
// The API is used unauthenticated. Without a token GitHub allows
// 60 requests/hour, which is sufficient for interactive browsing.
package github
