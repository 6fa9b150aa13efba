package textutil

import (
	"regexp"
	"time"

	"github.com/dlclark/regexp2"
)

// emailMatchTimeout bounds a single email search. The pattern backtracks
// quadratically on long dotted runs with no valid TLD.
const emailMatchTimeout = 250 * time.Millisecond

// wordBoundary is \b over letters, numbers and underscore. regexp2's own \w
// also counts nonspacing marks and every connector punctuation, and leaves out
// No/Nl digits such as "²".
const wordBoundary = `(?:(?<=[\p{L}\p{N}_])(?![\p{L}\p{N}_])|(?<![\p{L}\p{N}_])(?=[\p{L}\p{N}_]))`

var (
	// emailRegex needs Unicode-aware word boundaries, which RE2 lacks:
	// "éa@b.com" must not yield "a@b.com".
	emailRegex = newEmailRegex()

	urlRegex = regexp.MustCompile("https?://[^\\s\\p{Z}\\v\\x1c-\\x1f\\x85<>\"{}|\\\\^`$]+")
)

func newEmailRegex() *regexp2.Regexp {
	re := regexp2.MustCompile(wordBoundary+`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`+wordBoundary, regexp2.None)
	re.MatchTimeout = emailMatchTimeout
	return re
}
