package pipeline

import (
	"github.com/Aleksandr-Veriasov/PET-project-menu-bot/internal/platform"
)

// Artifacts holds the filesystem paths a run produced. Paths are only
// ever added, never rewritten; removal is tracked separately so each
// path is deleted exactly once.
type Artifacts struct {
	Video     string
	Converted string
	Audio     string
}

// Run is the mutable state of a single pipeline invocation. It is owned
// by exactly one orchestrator goroutine and never shared.
type Run struct {
	ID       string
	URL      string
	Platform platform.Platform
	ChatID   int64
	Stage    Stage

	Artifacts   Artifacts
	Description string

	// DistributionRef is set only after the upload handle resolved with
	// a non-empty reference. It stays empty when the upload failed or
	// missed the join budget.
	DistributionRef string

	cleaned map[string]bool
}
