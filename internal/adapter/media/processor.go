// Package media provides the media processing collaborator for the
// authoring flow.
package media

import (
	"context"
	"fmt"
	"time"
)

// Processor turns an uploaded media reference into a playable one. The
// real pipeline lives outside this codebase; implementations here are
// stand-ins with no internal timing logic beyond a simulated delay.
type Processor interface {
	Process(ctx context.Context, mediaRef string) (string, error)
}

// Passthrough returns the uploaded reference unchanged after a simulated
// processing delay, mirroring a blob-URL handoff.
type Passthrough struct {
	Delay time.Duration
}

// NewPassthrough creates a pass-through processor.
func NewPassthrough(delay time.Duration) *Passthrough {
	return &Passthrough{Delay: delay}
}

// Process validates the reference and returns it after the delay.
func (p *Passthrough) Process(ctx context.Context, mediaRef string) (string, error) {
	if mediaRef == "" {
		return "", fmt.Errorf("media reference is required")
	}
	if p.Delay > 0 {
		select {
		case <-time.After(p.Delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return mediaRef, nil
}

// Ensure Passthrough implements Processor.
var _ Processor = (*Passthrough)(nil)
