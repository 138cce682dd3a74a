package handlers

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"secure-notes/config"
	"secure-notes/models"
	"secure-notes/store"
	"secure-notes/token"
)

type fakeUser struct {
	id       string
	password string
}

type fakeUserStore struct {
	users map[string]fakeUser
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]fakeUser{}}
}

func (s *fakeUserStore) Register(_ context.Context, username, password string) (string, error) {
	if _, ok := s.users[username]; ok {
		return "", store.ErrDuplicateUsername
	}
	u := fakeUser{id: uuid.NewString(), password: password}
	s.users[username] = u
	return u.id, nil
}

func (s *fakeUserStore) Verify(_ context.Context, username, password string) (string, error) {
	u, ok := s.users[username]
	if !ok || u.password != password {
		return "", store.ErrAuthFailed
	}
	return u.id, nil
}

type fakeNote struct {
	note models.Note
	seq  int
}

type fakeNoteStore struct {
	notes   map[string]*fakeNote
	nextSeq int

	// paging values the handler passed down on the last List call
	listPage    int
	listPerPage int
}

func newFakeNoteStore() *fakeNoteStore {
	return &fakeNoteStore{notes: map[string]*fakeNote{}}
}

func (s *fakeNoteStore) Create(_ context.Context, ownerID, title, content string) (string, error) {
	s.nextSeq++
	now := time.Now().UTC()
	id := uuid.NewString()
	s.notes[id] = &fakeNote{
		note: models.Note{ID: id, OwnerID: ownerID, Title: title, Content: content, CreatedAt: now, UpdatedAt: now},
		seq:  s.nextSeq,
	}
	return id, nil
}

func (s *fakeNoteStore) List(_ context.Context, ownerID string, page, perPage int) ([]models.Note, error) {
	s.listPage, s.listPerPage = page, perPage

	owned := []*fakeNote{}
	for _, n := range s.notes {
		if n.note.OwnerID == ownerID {
			owned = append(owned, n)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].seq > owned[j].seq })

	notes := []models.Note{}
	for _, n := range owned {
		notes = append(notes, n.note)
	}
	return notes, nil
}

func (s *fakeNoteStore) Update(_ context.Context, ownerID, noteID string, title, content *string) error {
	n, ok := s.notes[noteID]
	if !ok || n.note.OwnerID != ownerID {
		return store.ErrNotFound
	}
	if title != nil {
		n.note.Title = *title
	}
	if content != nil {
		n.note.Content = *content
	}
	n.note.UpdatedAt = time.Now().UTC()
	s.nextSeq++
	n.seq = s.nextSeq
	return nil
}

func (s *fakeNoteStore) Delete(_ context.Context, ownerID, noteID string) error {
	n, ok := s.notes[noteID]
	if !ok || n.note.OwnerID != ownerID {
		return store.ErrNotFound
	}
	delete(s.notes, noteID)
	return nil
}

type fakePinger struct {
	err error
}

func (p *fakePinger) PingContext(context.Context) error { return p.err }

var errPingFailed = errors.New("ping failed")

func newTestHandler() (*Handler, *fakeUserStore, *fakeNoteStore) {
	users := newFakeUserStore()
	notes := newFakeNoteStore()
	h := &Handler{
		Users:  users,
		Notes:  notes,
		Tokens: token.NewService("test-secret"),
		DB:     &fakePinger{},
		Cfg:    &config.Config{Env: "development", SecretKey: "test-secret"},
		Log:    zap.NewNop(),
	}
	return h, users, notes
}
