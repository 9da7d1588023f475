package postgres

import (
	"database/sql"

	"github.com/svandewiele/tally/internal/models"
)

func (s *Store) GetActivityLog(activityID string) (*models.ActivityLog, error) {
	rows, err := s.db.Query(`
		SELECT id, started_at, ended_at
		FROM time_logs
		WHERE activity_id = $1
		ORDER BY position`, activityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	log := &models.ActivityLog{ActivityID: activityID}
	for rows.Next() {
		var (
			entry models.TimeLog
			ended sql.NullTime
		)
		if err := rows.Scan(&entry.ID, &entry.StartedAt, &ended); err != nil {
			return nil, err
		}
		entry.ActivityID = activityID
		if ended.Valid {
			t := ended.Time
			entry.EndedAt = &t
		}
		log.Entries = append(log.Entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return log, nil
}

func (s *Store) SaveActivityLog(log *models.ActivityLog) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM time_logs WHERE activity_id = $1", log.ActivityID); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO time_logs (id, activity_id, started_at, ended_at, position)
		VALUES ($1, $2, $3, $4, $5)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, entry := range log.Entries {
		var ended sql.NullTime
		if entry.EndedAt != nil {
			ended = sql.NullTime{Time: *entry.EndedAt, Valid: true}
		}
		if _, err := stmt.Exec(entry.ID, log.ActivityID, entry.StartedAt, ended, i); err != nil {
			return err
		}
	}

	return tx.Commit()
}
