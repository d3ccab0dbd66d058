package broker

import "strings"

const (
	subjectPrefix = "events."

	// NoteEventsSubject matches every note event.
	NoteEventsSubject = subjectPrefix + "note.>"
)

// SubjectFor returns the subject an event type is published on.
func SubjectFor(eventType EventType) string {
	return subjectPrefix + string(eventType)
}

// SubjectMatches reports whether subject is matched by pattern using NATS
// wildcard rules: "*" matches one token and a trailing ">" matches one or
// more tokens.
func SubjectMatches(pattern, subject string) bool {
	patternTokens := strings.Split(pattern, ".")
	subjectTokens := strings.Split(subject, ".")

	for i, token := range patternTokens {
		if token == ">" {
			return i == len(patternTokens)-1 && len(subjectTokens) > i
		}
		if i >= len(subjectTokens) {
			return false
		}
		if token != "*" && token != subjectTokens[i] {
			return false
		}
	}
	return len(patternTokens) == len(subjectTokens)
}
