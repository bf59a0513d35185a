package explorer

import "testing"

func TestProfileURL(t *testing.T) {
	tests := []struct {
		username string
		want     string
	}{
		{"octocat", "https://github.com/octocat"},
		{"dead-beef", "https://github.com/dead-beef"},
		{"user with space", "https://github.com/user%20with%20space"},
	}
	for _, tt := range tests {
		if got := ProfileURL(tt.username); got != tt.want {
			t.Errorf("ProfileURL(%q) = %q, want %q", tt.username, got, tt.want)
		}
	}
}

func TestRepositoryURL(t *testing.T) {
	tests := []struct {
		fullName string
		want     string
	}{
		{"octocat/hello-world", "https://github.com/octocat/hello-world"},
		{"hello-world", "https://github.com/hello-world"},
		{"octocat/name with space", "https://github.com/octocat/name%20with%20space"},
	}
	for _, tt := range tests {
		if got := RepositoryURL(tt.fullName); got != tt.want {
			t.Errorf("RepositoryURL(%q) = %q, want %q", tt.fullName, got, tt.want)
		}
	}
}
