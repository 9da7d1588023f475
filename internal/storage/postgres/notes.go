package postgres

import (
	"database/sql"
	"strings"

	"github.com/svandewiele/tally/internal/models"
)

func (s *Store) FindNote(activityID string) (*models.Note, error) {
	var content string
	err := s.db.QueryRow("SELECT content FROM notes WHERE activity_id = $1", activityID).Scan(&content)
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
		INSERT INTO notes (activity_id, content)
		VALUES ($1, $2)
		ON CONFLICT (activity_id) DO UPDATE SET content = EXCLUDED.content`,
		note.ActivityID, strings.Join(note.Content, "\n"))
	return err
}
