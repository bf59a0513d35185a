package github

import (
	"slices"
	"sort"
	"strings"
)

// Query operations are pure and total: they never mutate their input,
// never perform I/O, and are safe to call concurrently.

// CalculateLanguageStats groups repositories by language and counts
// occurrences. Repositories without a language contribute to no bucket.
// Buckets are sorted by descending count; equal counts are ordered
// alphabetically by language so the result is fully deterministic.
func CalculateLanguageStats(repos []Repository) []LanguageStat {
	counts := make(map[string]int)
	for _, r := range repos {
		if r.Language != nil {
			counts[*r.Language]++
		}
	}

	stats := make([]LanguageStat, 0, len(counts))
	for lang, n := range counts {
		stats = append(stats, LanguageStat{Language: lang, Count: n})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Language < stats[j].Language
	})
	return stats
}

// FilterBySearchText keeps repositories whose name, description, or
// language contains text, case-insensitively. An empty text returns a copy
// of the input unchanged. Nil description/language never match.
func FilterBySearchText(repos []Repository, text string) []Repository {
	if text == "" {
		return slices.Clone(repos)
	}
	needle := strings.ToLower(text)

	matched := make([]Repository, 0, len(repos))
	for _, r := range repos {
		if containsFold(r.Name, needle) ||
			(r.Description != nil && containsFold(*r.Description, needle)) ||
			(r.Language != nil && containsFold(*r.Language, needle)) {
			matched = append(matched, r)
		}
	}
	return matched
}

// FilterByLanguage keeps repositories whose language equals language
// exactly and case-sensitively, unlike the text search above which folds
// case. Language filters come from values the user picked out of
// [ExtractUniqueLanguages], not from typed input.
// An empty language returns a copy of the input unchanged.
func FilterByLanguage(repos []Repository, language string) []Repository {
	if language == "" {
		return slices.Clone(repos)
	}

	matched := make([]Repository, 0, len(repos))
	for _, r := range repos {
		if r.Language != nil && *r.Language == language {
			matched = append(matched, r)
		}
	}
	return matched
}

// FilterBySearchTextAndLanguage applies the text filter first, then
// narrows by language.
func FilterBySearchTextAndLanguage(repos []Repository, text, language string) []Repository {
	return FilterByLanguage(FilterBySearchText(repos, text), language)
}

// ExtractUniqueLanguages returns the distinct languages across repos,
// sorted in codepoint order. Repositories without a language are skipped.
func ExtractUniqueLanguages(repos []Repository) []string {
	seen := make(map[string]struct{})
	for _, r := range repos {
		if r.Language != nil {
			seen[*r.Language] = struct{}{}
		}
	}

	languages := make([]string, 0, len(seen))
	for lang := range seen {
		languages = append(languages, lang)
	}
	sort.Strings(languages)
	return languages
}

// containsFold reports whether s contains needle after lowercase folding.
// The needle must already be lowercased.
func containsFold(s, needle string) bool {
	return strings.Contains(strings.ToLower(s), needle)
}
