package downloader

import "context"

// Resolver fetches a video and its description from an origin URL.
//
// Acquire never fails across its boundary: every origin error is
// classified and logged internally, and an unrecoverable failure is
// reported as ("", "").
type Resolver interface {
	Acquire(ctx context.Context, url string) (path, description string)
}

// Fallback retrieves a post with an authenticated session when anonymous
// retrieval is blocked by the origin. One strategy per platform; a single
// attempt, no retries.
type Fallback interface {
	Acquire(ctx context.Context, url string) (path, description string, err error)
}
