package overlay

import (
	"fmt"
	"log"

	"InkOverlay/internal/render"
)

// DefaultID is the well-known identifier an overlay is mounted under.
const DefaultID = "ink-overlay-root"

// Page is the host content an overlay is injected over.
type Page interface {
	// Lookup returns the session mounted under id, if any.
	Lookup(id string) (*Session, bool)
	// Mount attaches the session's view to the page under id.
	Mount(id string, s *Session) error
	// Unmount detaches whatever is mounted under id.
	Unmount(id string)
}

// Registry injects overlay sessions into pages, at most one per page.
type Registry struct {
	ID         string
	Options    Options
	NewSurface func(width, height int) render.Surface
}

func NewRegistry(id string, opts Options) *Registry {
	if id == "" {
		id = DefaultID
	}
	return &Registry{
		ID:      id,
		Options: opts,
		NewSurface: func(width, height int) render.Surface {
			return render.NewRaster(width, height)
		},
	}
}

// Inject mounts a new session on page, sized width x height. If the page
// already carries an overlay, that session is returned and injected is false.
func (r *Registry) Inject(page Page, width, height int) (s *Session, injected bool, err error) {
	if existing, ok := page.Lookup(r.ID); ok && !existing.Closed() {
		log.Printf("[OVERLAY] %s already present, skipping injection", r.ID)
		return existing, false, nil
	}

	s = NewSession(r.NewSurface(width, height), r.Options)
	s.OnTeardown = func() {
		page.Unmount(r.ID)
	}
	if err := page.Mount(r.ID, s); err != nil {
		return nil, false, fmt.Errorf("mount overlay %s: %w", r.ID, err)
	}
	return s, true, nil
}
