package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/svandewiele/tally/internal/models"
)

func (s *Store) loadActivities() (map[string]*models.Activity, []*models.Activity, error) {
	rows, err := s.db.Query(`
		SELECT id, name, priority, location, tags, projects, deadline,
		       warning_seconds, completed, parent_id, position, created_at
		FROM activities
		ORDER BY position, created_at`)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	byID := make(map[string]*models.Activity)
	var order []*models.Activity
	for rows.Next() {
		var (
			a              models.Activity
			tags, projects string
			deadline       sql.NullTime
			warningSeconds int64
			parentID       sql.NullString
			position       int
		)
		err := rows.Scan(&a.ID, &a.Name, &a.Priority, &a.Location, &tags, &projects,
			&deadline, &warningSeconds, &a.Completed, &parentID, &position, &a.CreatedAt)
		if err != nil {
			return nil, nil, err
		}

		if err := json.Unmarshal([]byte(tags), &a.Tags); err != nil {
			return nil, nil, fmt.Errorf("failed to decode tags for activity %s: %w", a.ID, err)
		}
		if err := json.Unmarshal([]byte(projects), &a.Projects); err != nil {
			return nil, nil, fmt.Errorf("failed to decode projects for activity %s: %w", a.ID, err)
		}
		if deadline.Valid {
			t := deadline.Time
			a.Deadline = &t
		}
		a.WarningTimeFrame = time.Duration(warningSeconds) * time.Second
		if parentID.Valid {
			a.ParentID = parentID.String
		}

		byID[a.ID] = &a
		order = append(order, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	var roots []*models.Activity
	for _, a := range order {
		if a.ParentID == "" {
			roots = append(roots, a)
			continue
		}
		parent, ok := byID[a.ParentID]
		if !ok {
			roots = append(roots, a)
			continue
		}
		parent.SubActivities = append(parent.SubActivities, a)
	}

	return byID, roots, nil
}

func (s *Store) FindActivityByID(id string) (*models.Activity, error) {
	byID, _, err := s.loadActivities()
	if err != nil {
		return nil, err
	}
	return byID[id], nil
}

func (s *Store) FindActivityByName(name string) (*models.Activity, error) {
	var id string
	err := s.db.QueryRow("SELECT id FROM activities WHERE name = $1 LIMIT 1", name).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	byID, _, err := s.loadActivities()
	if err != nil {
		return nil, err
	}
	return byID[id], nil
}

// TopLevelNameExists reports whether a top-level activity already uses the
// name. Nested activities may share names freely.
func (s *Store) TopLevelNameExists(name string) (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(1) FROM activities WHERE name = $1 AND parent_id IS NULL", name).Scan(&count)
	return count > 0, err
}

func (s *Store) GetAllActivities() ([]*models.Activity, error) {
	_, roots, err := s.loadActivities()
	if err != nil {
		return nil, err
	}
	return roots, nil
}

func (s *Store) SaveActivity(activity *models.Activity) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	position := 0
	if activity.ParentID != "" {
		position, err = siblingPosition(tx, activity)
		if err != nil {
			return err
		}
	}

	if err := s.upsertSubtree(tx, activity, activity.ParentID, position); err != nil {
		return err
	}

	return tx.Commit()
}

// siblingPosition places a nested node among its siblings: a node already
// stored under the same parent keeps its position, a new or moved node is
// appended after the parent's existing children.
func siblingPosition(tx *sql.Tx, a *models.Activity) (int, error) {
	var (
		pos    int
		parent sql.NullString
	)
	err := tx.QueryRow("SELECT position, parent_id FROM activities WHERE id = $1", a.ID).Scan(&pos, &parent)
	if err != nil && err != sql.ErrNoRows {
		return 0, err
	}
	if err == nil && parent.Valid && parent.String == a.ParentID {
		return pos, nil
	}

	var count int
	err = tx.QueryRow("SELECT COUNT(1) FROM activities WHERE parent_id = $1 AND id <> $2",
		a.ParentID, a.ID).Scan(&count)
	return count, err
}

func (s *Store) upsertSubtree(tx *sql.Tx, a *models.Activity, parentID string, position int) error {
	tags, err := json.Marshal(stringsOrEmpty(a.Tags))
	if err != nil {
		return fmt.Errorf("failed to marshal tags: %w", err)
	}
	projects, err := json.Marshal(stringsOrEmpty(a.Projects))
	if err != nil {
		return fmt.Errorf("failed to marshal projects: %w", err)
	}

	var deadline sql.NullTime
	if a.Deadline != nil {
		deadline = sql.NullTime{Time: *a.Deadline, Valid: true}
	}
	var parent sql.NullString
	if parentID != "" {
		parent = sql.NullString{String: parentID, Valid: true}
	}
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = tx.Exec(`
		INSERT INTO activities (
			id, name, priority, location, tags, projects, deadline,
			warning_seconds, completed, parent_id, position, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			priority = EXCLUDED.priority,
			location = EXCLUDED.location,
			tags = EXCLUDED.tags,
			projects = EXCLUDED.projects,
			deadline = EXCLUDED.deadline,
			warning_seconds = EXCLUDED.warning_seconds,
			completed = EXCLUDED.completed,
			parent_id = EXCLUDED.parent_id,
			position = EXCLUDED.position,
			created_at = EXCLUDED.created_at`,
		a.ID, a.Name, a.Priority, a.Location, string(tags), string(projects), deadline,
		int64(a.WarningTimeFrame.Seconds()), a.Completed, parent, position, createdAt,
	)
	if err != nil {
		return err
	}

	for i, sub := range a.SubActivities {
		sub.ParentID = a.ID
		if err := s.upsertSubtree(tx, sub, a.ID, i); err != nil {
			return err
		}
	}

	return nil
}

func stringsOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func (s *Store) DeleteActivity(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM activities WHERE id = $1", id); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM time_logs WHERE activity_id = $1", id); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM notes WHERE activity_id = $1", id); err != nil {
		return err
	}

	return tx.Commit()
}
