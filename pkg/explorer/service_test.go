package explorer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	apperrors "github.com/JosepEscobar/github-profile-explorer-sub000/pkg/errors"
	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/github"
)

// countingService returns a service backed by a real client against a test
// server that counts every request it receives.
func countingService(t *testing.T, handler http.HandlerFunc) (*Service, *atomic.Int32) {
	t.Helper()
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewService(github.NewClient(srv.URL, 0, nil)), &requests
}

func TestValidationRunsBeforeAnyNetworkCall(t *testing.T) {
	svc, requests := countingService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should reach the server")
	})
	ctx := context.Background()

	tests := []struct {
		name    string
		call    func() error
		message string
	}{
		{"empty username", func() error {
			_, err := svc.FetchUser(ctx, "")
			return err
		}, "Username cannot be empty"},
		{"username with spaces", func() error {
			_, err := svc.FetchUser(ctx, "john doe")
			return err
		}, "Username cannot contain spaces"},
		{"empty username for repos", func() error {
			_, err := svc.FetchUserRepositories(ctx, "")
			return err
		}, "Username cannot be empty"},
		{"spaced username for repos", func() error {
			_, err := svc.FetchUserRepositories(ctx, "john doe")
			return err
		}, "Username cannot contain spaces"},
		{"empty search query", func() error {
			_, err := svc.SearchUsers(ctx, "")
			return err
		}, "Search query cannot be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !apperrors.Is(err, apperrors.ErrCodeInvalidInput) {
				t.Fatalf("error = %v, want INVALID_INPUT", err)
			}
			if got := apperrors.UserMessage(err); got != tt.message {
				t.Errorf("message = %q, want %q", got, tt.message)
			}
		})
	}

	if got := requests.Load(); got != 0 {
		t.Errorf("server received %d requests, want 0", got)
	}
}

func TestServiceDelegatesValidInput(t *testing.T) {
	svc, requests := countingService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": 1, "login": "octocat", "avatar_url": "https://example.com/a.png"}`))
	})

	user, err := svc.FetchUser(context.Background(), "octocat")
	if err != nil {
		t.Fatalf("FetchUser error: %v", err)
	}
	if user.Login != "octocat" {
		t.Errorf("user = %+v", user)
	}
	if got := requests.Load(); got != 1 {
		t.Errorf("requests = %d, want 1", got)
	}
}

func TestFetchFilteredRepositories(t *testing.T) {
	svc, _ := countingService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": 1, "name": "ios-app", "full_name": "o/ios-app",
			 "owner": {"id": 1, "login": "o", "avatar_url": "https://e.com/a.png"},
			 "html_url": "https://github.com/o/ios-app", "language": "Swift"},
			{"id": 2, "name": "site", "full_name": "o/site",
			 "owner": {"id": 1, "login": "o", "avatar_url": "https://e.com/a.png"},
			 "html_url": "https://github.com/o/site", "language": "JavaScript"}
		]`))
	})

	repos, err := svc.FetchFilteredRepositories(context.Background(), "o", "", "Swift")
	if err != nil {
		t.Fatalf("FetchFilteredRepositories error: %v", err)
	}
	if len(repos) != 1 || repos[0].Name != "ios-app" {
		t.Errorf("repos = %+v", repos)
	}
}

func TestFetchLanguageStats(t *testing.T) {
	svc, _ := countingService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": 1, "name": "a", "full_name": "o/a",
			 "owner": {"id": 1, "login": "o", "avatar_url": "https://e.com/a.png"},
			 "html_url": "https://github.com/o/a", "language": "Go"},
			{"id": 2, "name": "b", "full_name": "o/b",
			 "owner": {"id": 1, "login": "o", "avatar_url": "https://e.com/a.png"},
			 "html_url": "https://github.com/o/b", "language": "Go"},
			{"id": 3, "name": "c", "full_name": "o/c",
			 "owner": {"id": 1, "login": "o", "avatar_url": "https://e.com/a.png"},
			 "html_url": "https://github.com/o/c", "language": null}
		]`))
	})

	stats, err := svc.FetchLanguageStats(context.Background(), "o")
	if err != nil {
		t.Fatalf("FetchLanguageStats error: %v", err)
	}
	if len(stats) != 1 || stats[0].Language != "Go" || stats[0].Count != 2 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestProfileURLBasic(t *testing.T) {
	if got := ProfileURL("octocat"); got != "https://github.com/octocat" {
		t.Errorf("ProfileURL = %q", got)
	}
}

func TestRepositoryURLBasic(t *testing.T) {
	if got := RepositoryURL("octocat/Hello-World"); got != "https://github.com/octocat/Hello-World" {
		t.Errorf("RepositoryURL = %q", got)
	}
}
