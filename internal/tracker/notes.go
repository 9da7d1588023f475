package tracker

import (
	"github.com/svandewiele/tally/internal/models"
	"github.com/svandewiele/tally/internal/storage"
)

// NoteManager owns the free-text notes, keyed by activity id.
type NoteManager struct {
	store storage.Provider
}

func NewNoteManager(store storage.Provider) *NoteManager {
	return &NoteManager{store: store}
}

// FindNoteForActivity returns the activity's note, or nil when none exists.
func (m *NoteManager) FindNoteForActivity(activityID string) (*models.Note, error) {
	return m.store.FindNote(activityID)
}

// CreateNoteForActivity returns the activity's note, creating and
// persisting an empty one when absent. An existing note is returned as-is,
// never overwritten.
func (m *NoteManager) CreateNoteForActivity(activityID string) (*models.Note, error) {
	note, err := m.store.FindNote(activityID)
	if err != nil {
		return nil, err
	}
	if note != nil {
		return note, nil
	}

	note = &models.Note{ActivityID: activityID}
	if err := m.store.SaveNote(note); err != nil {
		return nil, err
	}
	return note, nil
}

// Save persists the note's current content.
func (m *NoteManager) Save(note *models.Note) error {
	return m.store.SaveNote(note)
}
