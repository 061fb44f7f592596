package aggregate

import "strings"

// BuildQuery turns a topic list into the combined OR query used by the
// search API sources: each topic quoted, joined with OR.
func BuildQuery(topics []string) string {
	quoted := make([]string, 0, len(topics))
	for _, t := range topics {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		quoted = append(quoted, `"`+t+`"`)
	}
	return strings.Join(quoted, " OR ")
}

// MatchesTopics reports whether at least one token of at least one topic
// appears, case-insensitively, in the article's title, description or URL.
func MatchesTopics(title, description, url string, topics []string) bool {
	hay := strings.ToLower(title + " " + description + " " + url)
	for _, topic := range topics {
		for _, token := range strings.Fields(strings.ToLower(topic)) {
			if strings.Contains(hay, token) {
				return true
			}
		}
	}
	return false
}
