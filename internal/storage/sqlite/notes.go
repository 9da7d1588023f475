package sqlite

import (
	"database/sql"
	"strings"

	"github.com/svandewiele/tally/internal/models"
)

func (s *Store) FindNote(activityID string) (*models.Note, error) {
	var content string
	err := s.db.QueryRow("SELECT content FROM notes WHERE activity_id = ?", activityID).Scan(&content)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	note := &models.Note{ActivityID: activityID}
	if content != "" {
		note.Content = strings.Split(content, "\n")
	}
	return note, nil
}

func (s *Store) SaveNote(note *models.Note) error {
	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO notes (activity_id, content)
		VALUES (?, ?)`,
		note.ActivityID, strings.Join(note.Content, "\n"))
	return err
}
