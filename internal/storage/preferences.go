package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/Veraticus/hpqaq/internal/common"
)

// Preference keys.
const (
	KeyIntroSeen = "hpq_seen_init"
	KeyCity      = "ui.city"
	KeyPageSize  = "ui.page_size"
)

// GetPref returns the stored value for key, or common.ErrNotFound.
func (s *SQLiteStorage) GetPref(ctx context.Context, key string) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}
	if err := validateString(key, "key"); err != nil {
		return "", err
	}

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("preference %q: %w", key, common.ErrNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read preference %q: %w", key, err)
	}
	return value, nil
}

// SetPref stores value under key.
func (s *SQLiteStorage) SetPref(ctx context.Context, key, value string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(key, "key"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to write preference %q: %w", key, err)
	}
	return nil
}

// DeletePref removes key. Removing a missing key is not an error.
func (s *SQLiteStorage) DeletePref(ctx context.Context, key string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM preferences WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete preference %q: %w", key, err)
	}
	return nil
}

// IntroSeen reports whether the intro splash has been shown before.
func (s *SQLiteStorage) IntroSeen(ctx context.Context) (bool, error) {
	v, err := s.GetPref(ctx, KeyIntroSeen)
	if errors.Is(err, common.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return v == "1", nil
}

// MarkIntroSeen records that the intro splash was shown.
func (s *SQLiteStorage) MarkIntroSeen(ctx context.Context) error {
	return s.SetPref(ctx, KeyIntroSeen, "1")
}

// UIPrefs are the dashboard settings restored on start.
type UIPrefs struct {
	City     string
	PageSize int
}

// LoadUIPrefs returns the saved settings. Missing values are zero.
func (s *SQLiteStorage) LoadUIPrefs(ctx context.Context) (UIPrefs, error) {
	var prefs UIPrefs

	city, err := s.GetPref(ctx, KeyCity)
	switch {
	case err == nil:
		prefs.City = city
	case !errors.Is(err, common.ErrNotFound):
		return prefs, err
	}

	size, err := s.GetPref(ctx, KeyPageSize)
	switch {
	case err == nil:
		n, convErr := strconv.Atoi(size)
		if convErr != nil || n <= 0 {
			return prefs, fmt.Errorf("%w: page size %q", ErrInvalidValue, size)
		}
		prefs.PageSize = n
	case !errors.Is(err, common.ErrNotFound):
		return prefs, err
	}

	return prefs, nil
}

// SaveUIPrefs stores the non-zero settings.
func (s *SQLiteStorage) SaveUIPrefs(ctx context.Context, prefs UIPrefs) error {
	if prefs.City != "" {
		if err := s.SetPref(ctx, KeyCity, prefs.City); err != nil {
			return err
		}
	}
	if prefs.PageSize > 0 {
		if err := s.SetPref(ctx, KeyPageSize, strconv.Itoa(prefs.PageSize)); err != nil {
			return err
		}
	}
	return nil
}

// ClearUIPrefs forgets the saved city and page size.
func (s *SQLiteStorage) ClearUIPrefs(ctx context.Context) error {
	for _, key := range []string{KeyCity, KeyPageSize} {
		if err := s.DeletePref(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
