package web

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/budgetbox/budgetbox-go/pkg/budgetbox"
	"github.com/budgetbox/budgetbox-go/pkg/budgetbox/models"
)

// Session holds one user's working copy of the uploaded table's segments.
// Each session owns independent deep copies, so edits in one session can
// never alias another session's rows. Nothing survives past generation
// except the session entry itself, which Remove discards.
type Session struct {
	ID       string
	Title    string
	Opts     budgetbox.Options
	Segments []models.Segment
	Created  time.Time
}

// Segment returns the session's segment with the given name, or nil.
func (s *Session) Segment(name string) *models.Segment {
	for i := range s.Segments {
		if s.Segments[i].Name == name {
			return &s.Segments[i]
		}
	}
	return nil
}

// snapshot returns a deep copy of the session. Readers work on snapshots so
// a concurrent Update can never mutate rows they are iterating.
func (s *Session) snapshot() *Session {
	cp := *s
	cp.Segments = make([]models.Segment, len(s.Segments))
	for i, seg := range s.Segments {
		cp.Segments[i] = seg.Clone()
	}
	return &cp
}

// sessionStore is the in-memory session registry. The mutex guards the map
// and every access to stored sessions: writes go through Update, and Get
// hands out deep snapshots rather than the live session.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*Session)}
}

func (st *sessionStore) Create(title string, opts budgetbox.Options, segments []models.Segment) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	s := &Session{
		ID:       uuid.NewString(),
		Title:    title,
		Opts:     opts,
		Segments: segments,
		Created:  time.Now(),
	}
	st.sessions[s.ID] = s
	return s
}

// Get returns a deep snapshot of the session, safe to read while other
// requests mutate the stored copy.
func (st *sessionStore) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return nil, false
	}
	return s.snapshot(), true
}

func (st *sessionStore) Remove(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

// Update runs fn on the session under the store lock.
func (st *sessionStore) Update(id string, fn func(*Session)) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	if !ok {
		return false
	}
	fn(s)
	return true
}
