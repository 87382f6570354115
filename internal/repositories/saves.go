package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"weather-desk/internal/models"
	"weather-desk/pkg/logger"
)

const saveExt = ".json"

var (
	ErrSaveNotFound    = errors.New("save file not found")
	ErrInvalidSaveName = errors.New("invalid save file name")
	ErrNothingToSave   = errors.New("nothing to save")
)

// SaveStore keeps saved lookups as JSON files in a single directory.
type SaveStore struct {
	dir string
	l   *logger.Logger
}

func NewSaveStore(dir string, l *logger.Logger) *SaveStore {
	return &SaveStore{dir: dir, l: l}
}

func (s *SaveStore) Dir() string {
	return s.dir
}

// SaveFileName builds "<date>-<city>-<country>.json".
func SaveFileName(date, city, country string) string {
	clean := func(v string) string {
		return strings.NewReplacer("/", "_", `\`, "_").Replace(v)
	}
	return fmt.Sprintf("%s-%s-%s%s", clean(date), clean(city), clean(country), saveExt)
}

// Save writes day under name and returns the full path.
func (s *SaveStore) Save(name string, day models.SavedDay) (string, error) {
	if len(day.Weather) == 0 || len(day.Forecast) == 0 {
		return "", ErrNothingToSave
	}

	path, err := s.path(name)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(day, "", "    ")
	if err != nil {
		return "", fmt.Errorf("failed to encode save: %w", err)
	}

	if err = os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create saves dir: %w", err)
	}

	if err = os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write save: %w", err)
	}

	s.l.Info("saved day", map[string]any{"file": path})

	return path, nil
}

// Load reads a save previously written by Save.
func (s *SaveStore) Load(name string) (models.SavedDay, error) {
	path, err := s.path(name)
	if err != nil {
		return models.SavedDay{}, err
	}

	return s.LoadFile(path)
}

// LoadFile reads a save from an arbitrary path.
func (s *SaveStore) LoadFile(path string) (models.SavedDay, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return models.SavedDay{}, fmt.Errorf("%w: %s", ErrSaveNotFound, filepath.Base(path))
	}
	if err != nil {
		return models.SavedDay{}, fmt.Errorf("failed to read save: %w", err)
	}

	var day models.SavedDay
	if err = json.Unmarshal(data, &day); err != nil {
		return models.SavedDay{}, err
	}

	return day, nil
}

// List returns the save file names, sorted.
func (s *SaveStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != saveExt {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	return names, nil
}

func (s *SaveStore) path(name string) (string, error) {
	if name == "" || filepath.Base(name) != name || name == "." || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidSaveName, name)
	}
	if filepath.Ext(name) != saveExt {
		name += saveExt
	}
	return filepath.Join(s.dir, name), nil
}
