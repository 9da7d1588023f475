package sqlite

import (
	"fmt"
	"strconv"

	"github.com/svandewiele/tally/internal/constants"
	"github.com/svandewiele/tally/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	settings := models.Settings{}
	count := 0
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case constants.SettingDefaultWarningHours:
			hours, err := strconv.Atoi(value)
			if err != nil {
				return models.Settings{}, fmt.Errorf("parsing %s: %w", constants.SettingDefaultWarningHours, err)
			}
			settings.DefaultWarningHours = hours
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	if count == 0 {
		return models.Settings{}, fmt.Errorf("settings not found")
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)",
		constants.SettingDefaultWarningHours, strconv.Itoa(settings.DefaultWarningHours))
	if err != nil {
		return err
	}

	return tx.Commit()
}
