package downloader

import "strings"

// Kind classifies an origin error for retry decisions.
type Kind int

const (
	// KindTransient covers network timeouts and 5xx responses; worth retrying.
	KindTransient Kind = iota
	// KindRateLimit covers anti-automation and auth walls; switch strategy.
	KindRateLimit
	// KindTerminal covers content-level reasons retrying cannot remedy.
	KindTerminal
	// KindUnknown gets one cautious retry, same as transient.
	KindUnknown
)

var rateLimitHints = []string{
	"http error 403",
	"http error 429",
	"forbidden",
	"too many requests",
	"rate limit",
	"login required",
	"please log in",
	"not logged in",
	"this video is only available for registered users",
}

var terminalHints = []string{
	"copyright",
	"dmca",
	"drm",
	"geo restricted",
	"geo-restricted",
	"video has been removed",
	"video unavailable",
	"private video",
	"sign in to confirm your age",
	"age-restricted",
}

var transientHints = []string{
	"timed out",
	"timeout",
	"temporary failure",
	"server error",
	"503 service unavailable",
	"connection reset",
	"network is unreachable",
	"incomplete fragment",
	"http error 5",
}

// Classify maps a yt-dlp error onto the retry taxonomy by its message.
// Rate-limit hints are checked first: a 403 wall is a strategy-switch
// signal, not a reason to give up on the content.
func Classify(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	s := strings.ToLower(err.Error())

	for _, h := range rateLimitHints {
		if strings.Contains(s, h) {
			return KindRateLimit
		}
	}
	for _, h := range terminalHints {
		if strings.Contains(s, h) {
			return KindTerminal
		}
	}
	for _, h := range transientHints {
		if strings.Contains(s, h) {
			return KindTransient
		}
	}
	return KindUnknown
}
