package github

import (
	"reflect"
	"testing"
)

func repoFixture(name string, language *string, description *string) Repository {
	return Repository{
		Name:        name,
		FullName:    "octocat/" + name,
		Language:    language,
		Description: description,
		Topics:      []string{},
	}
}

func queryFixtures() []Repository {
	return []Repository{
		repoFixture("ios-app", strPtr("Swift"), strPtr("An iOS application")),
		repoFixture("server", strPtr("Swift"), nil),
		repoFixture("website", strPtr("JavaScript"), strPtr("Marketing site")),
		repoFixture("scripts", strPtr("Python"), strPtr("Automation scripts")),
		repoFixture("widgets", strPtr("Swift"), strPtr("Shared UI widgets")),
		repoFixture("dashboard", strPtr("JavaScript"), nil),
		repoFixture("dotfiles", nil, strPtr("Editor config")),
	}
}

func TestCalculateLanguageStats(t *testing.T) {
	stats := CalculateLanguageStats(queryFixtures())

	want := []LanguageStat{
		{Language: "Swift", Count: 3},
		{Language: "JavaScript", Count: 2},
		{Language: "Python", Count: 1},
	}
	if !reflect.DeepEqual(stats, want) {
		t.Errorf("stats = %v, want %v", stats, want)
	}
}

func TestCalculateLanguageStatsTieBreak(t *testing.T) {
	repos := []Repository{
		repoFixture("a", strPtr("Ruby"), nil),
		repoFixture("b", strPtr("Go"), nil),
		repoFixture("c", strPtr("Go"), nil),
		repoFixture("d", strPtr("Ruby"), nil),
	}

	stats := CalculateLanguageStats(repos)

	// Equal counts order alphabetically so output stays deterministic.
	want := []LanguageStat{
		{Language: "Go", Count: 2},
		{Language: "Ruby", Count: 2},
	}
	if !reflect.DeepEqual(stats, want) {
		t.Errorf("stats = %v, want %v", stats, want)
	}
}

func TestCalculateLanguageStatsEmpty(t *testing.T) {
	if stats := CalculateLanguageStats(nil); len(stats) != 0 {
		t.Errorf("stats = %v, want empty", stats)
	}
}

func TestFilterBySearchText(t *testing.T) {
	repos := queryFixtures()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"matches name", "dash", []string{"dashboard"}},
		{"matches description", "automation", []string{"scripts"}},
		{"matches language case-insensitively", "swift", []string{"ios-app", "server", "widgets"}},
		{"mixed case query", "JAVASCRIPT", []string{"website", "dashboard"}},
		{"no match", "kotlin", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterBySearchText(repos, tt.text)
			if !reflect.DeepEqual(repoNames(got), tt.want) {
				t.Errorf("names = %v, want %v", repoNames(got), tt.want)
			}
		})
	}
}

func TestFilterBySearchTextEmptyIsIdentity(t *testing.T) {
	repos := queryFixtures()

	got := FilterBySearchText(repos, "")
	if !reflect.DeepEqual(got, repos) {
		t.Errorf("empty query should keep every repository, got %d of %d", len(got), len(repos))
	}
	// The result must still be a fresh slice, not an alias of the input.
	got[0].Name = "mutated"
	if repos[0].Name == "mutated" {
		t.Error("result aliases the input slice")
	}
}

func TestFilterByLanguageIsCaseSensitive(t *testing.T) {
	repos := queryFixtures()

	if got := FilterByLanguage(repos, "Swift"); len(got) != 3 {
		t.Errorf("exact match returned %d repos, want 3", len(got))
	}
	if got := FilterByLanguage(repos, "swift"); len(got) != 0 {
		t.Errorf("lowercase query must not match, got %d repos", len(got))
	}
}

func TestFilterByLanguageExcludesNilLanguage(t *testing.T) {
	repos := queryFixtures()

	for _, lang := range []string{"Swift", "JavaScript", "Python"} {
		for _, repo := range FilterByLanguage(repos, lang) {
			if repo.Language == nil {
				t.Fatalf("repo %q has no language but matched %q", repo.Name, lang)
			}
		}
	}
}

func TestFilterBySearchTextAndLanguage(t *testing.T) {
	repos := queryFixtures()

	got := FilterBySearchTextAndLanguage(repos, "s", "Swift")
	want := []string{"ios-app", "server", "widgets"}
	if !reflect.DeepEqual(repoNames(got), want) {
		t.Errorf("names = %v, want %v", repoNames(got), want)
	}

	got = FilterBySearchTextAndLanguage(repos, "ui", "Swift")
	if !reflect.DeepEqual(repoNames(got), []string{"widgets"}) {
		t.Errorf("names = %v, want [widgets]", repoNames(got))
	}

	if got := FilterBySearchTextAndLanguage(repos, "", ""); len(got) != len(repos) {
		t.Errorf("empty filters kept %d of %d repos", len(got), len(repos))
	}
}

func TestExtractUniqueLanguages(t *testing.T) {
	got := ExtractUniqueLanguages(queryFixtures())

	want := []string{"JavaScript", "Python", "Swift"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("languages = %v, want %v", got, want)
	}
}

func TestExtractUniqueLanguagesEmpty(t *testing.T) {
	if got := ExtractUniqueLanguages(nil); len(got) != 0 {
		t.Errorf("languages = %v, want empty", got)
	}
}

func repoNames(repos []Repository) []string {
	names := make([]string, 0, len(repos))
	for _, r := range repos {
		names = append(names, r.Name)
	}
	return names
}
