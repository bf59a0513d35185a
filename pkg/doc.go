// Package pkg provides the core libraries for the GitHub profile explorer.
//
// # Overview
//
// The explorer fetches GitHub user profiles and repositories, filters and
// aggregates them client-side, and keeps favorites and search history. The
// pkg directory is organized into three main areas:
//
//  1. [github] - Data access (endpoints, transport, mapping, query operations)
//  2. [explorer] - Use cases (validation, favorites, search history)
//  3. infrastructure - [cache], [store], [httputil], [errors], [chart]
//
// # Architecture
//
// The typical data flow through the explorer:
//
//	GitHub REST API
//	         ↓
//	    [github] package (endpoint → transport → DTO → domain entity)
//	         ↓
//	    [github] query operations (filter, aggregate)
//	         ↓
//	    [explorer] use cases (validation, favorites, history)
//	         ↓
//	    CLI / JSON API output
//
// # Quick Start
//
// Fetch a user's repositories and aggregate their languages:
//
//	import (
//	    "context"
//	    "github.com/JosepEscobar/github-profile-explorer-sub000/pkg/github"
//	)
//
//	client := github.NewClient("", 0, nil)
//	repos, _ := client.FetchUserRepositories(context.Background(), "octocat")
//	stats := github.CalculateLanguageStats(repos)
//
// # Main Packages
//
// [github] - The data-access core. Builds endpoints, executes one request
// per call with error classification, validates wire payloads into domain
// entities, and paginates repository listings transparently. The pure query
// operations (text search, language filter, statistics) never touch the
// network.
//
// [explorer] - Use-case wrappers over the client: input validation with
// user-facing messages, plus favorites and search history on the [store]
// interface.
//
// [cache] - Byte cache with file, Redis, and null backends. Used by the
// CLI and the JSON API to cache results; the data-access core never caches.
//
// [store] - String-list key-value store with memory, file, and MongoDB
// backends, backing favorites and history.
//
// [httputil] - Caller-side retry with exponential backoff. The transport
// itself never retries.
//
// [chart] - Language distribution charts as Graphviz DOT and SVG.
//
// [errors] - Structured error codes shared by every layer.
package pkg
