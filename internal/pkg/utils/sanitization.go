package utils

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLikePattern escapes LIKE metacharacters so the term matches literally.
func EscapeLikePattern(term string) string {
	return likeEscaper.Replace(term)
}

// BuildContainsPattern wraps an escaped term as a substring pattern.
func BuildContainsPattern(term string) string {
	return "%" + EscapeLikePattern(term) + "%"
}

func NormalizeSearchTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}
