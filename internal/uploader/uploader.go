package uploader

import (
	"context"
	"sync"
	"time"
)

// Upload is the handle for one in-flight channel upload.
type Upload struct {
	done   chan struct{}
	cancel context.CancelFunc
	slice  time.Duration

	mu  sync.Mutex
	ref string
}

// Start launches the upload in the background and returns its handle.
// The sender reads only the path it is given; the caller must keep that
// file alive until the upload is joined or aborted.
func (u *implUploader) Start(ctx context.Context, path string) *Upload {
	ctx, cancel := context.WithCancel(ctx)
	up := &Upload{
		done:   make(chan struct{}),
		cancel: cancel,
		slice:  u.slice,
	}

	go func() {
		defer close(up.done)
		defer cancel()

		ref, err := u.sender.SendVideo(ctx, path)
		if err != nil {
			u.logger.Warn(ctx, "channel upload of %s failed: %v", path, err)
			return
		}
		up.setRef(ref)
		u.logger.Debug(ctx, "channel upload done: %s", ref)
	}()

	return up
}

// Wait blocks up to budget for the upload, polling in short slices.
// On deadline the underlying send is cancelled (not abandoned) and ""
// is returned; a completion that slipped in before the cancellation took
// effect remains readable through Ref.
func (u *Upload) Wait(budget time.Duration) string {
	deadline := time.Now().Add(budget)

	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			u.cancel()
			return ""
		}

		slice := u.slice
		if slice > remaining {
			slice = remaining
		}

		select {
		case <-u.done:
			return u.Ref()
		case <-time.After(slice):
		}
	}
}

// Abort cancels the outstanding send and waits for the worker to exit,
// so no dangling task can mutate state after the run has failed.
func (u *Upload) Abort() {
	u.cancel()
	<-u.done
}

// Ref returns the distribution reference, "" while the upload is still
// running or after it failed.
func (u *Upload) Ref() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.ref
}

func (u *Upload) setRef(ref string) {
	u.mu.Lock()
	u.ref = ref
	u.mu.Unlock()
}
