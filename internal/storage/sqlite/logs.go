package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/svandewiele/tally/internal/models"
)

// GetActivityLog returns the time log for an activity. An activity without
// logged intervals gets an empty log, never a nil one.
func (s *Store) GetActivityLog(activityID string) (*models.ActivityLog, error) {
	rows, err := s.db.Query(`
		SELECT id, started_at, ended_at
		FROM time_logs
		WHERE activity_id = ?
		ORDER BY position`, activityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	log := &models.ActivityLog{ActivityID: activityID}
	for rows.Next() {
		var (
			entry   models.TimeLog
			started string
			ended   sql.NullString
		)
		if err := rows.Scan(&entry.ID, &started, &ended); err != nil {
			return nil, err
		}
		entry.ActivityID = activityID

		entry.StartedAt, err = time.Parse(time.RFC3339, started)
		if err != nil {
			return nil, fmt.Errorf("failed to parse started_at for time log %s: %w", entry.ID, err)
		}
		if ended.Valid && ended.String != "" {
			t, err := time.Parse(time.RFC3339, ended.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse ended_at for time log %s: %w", entry.ID, err)
			}
			entry.EndedAt = &t
		}

		log.Entries = append(log.Entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return log, nil
}

// SaveActivityLog rewrites the activity's intervals in one transaction,
// keeping insertion order in the position column.
func (s *Store) SaveActivityLog(log *models.ActivityLog) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM time_logs WHERE activity_id = ?", log.ActivityID); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO time_logs (id, activity_id, started_at, ended_at, position)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, entry := range log.Entries {
		var ended sql.NullString
		if entry.EndedAt != nil {
			ended = sql.NullString{String: entry.EndedAt.UTC().Format(time.RFC3339), Valid: true}
		}
		_, err := stmt.Exec(entry.ID, log.ActivityID, entry.StartedAt.UTC().Format(time.RFC3339), ended, i)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
