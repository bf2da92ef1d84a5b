package heuristic

import "strings"

// Phrases signalling an interview process without whiteboard algorithms.
var noWhiteboardPhrases = []string{
	"no whiteboard",
	"practical coding",
	"take home",
	"pair programming",
	"code review",
}

// Phrases signalling an inclusive hiring culture.
var diversityPhrases = []string{
	"diversity",
	"inclusive",
	"equal opportunity",
	"underrepresented",
	"belonging",
}

// NoWhiteboard reports whether the description mentions any of the fixed
// no-whiteboard interview phrases.
func NoWhiteboard(description string) bool {
	return containsAny(description, noWhiteboardPhrases)
}

// DiversityFriendly reports whether the description mentions any of the
// fixed diversity phrases.
func DiversityFriendly(description string) bool {
	return containsAny(description, diversityPhrases)
}

func containsAny(text string, phrases []string) bool {
	lower := strings.ToLower(text)
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
