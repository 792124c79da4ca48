package recipe

import "context"

// Extractor turns a post description plus speech transcript into
// structured recipe fields via a hosted language model.
//
// A transport or quota failure is reported as an error title with empty
// body, so callers can tell "attempted and failed" from "nothing
// attempted"; a degenerate reply degrades to placeholder sections.
type Extractor interface {
	Extract(ctx context.Context, description, transcript string) (title, instructions, ingredients string)
}
