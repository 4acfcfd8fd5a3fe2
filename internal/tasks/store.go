package tasks

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultListTitle names the list seeded into an empty data file.
const DefaultListTitle = "Tasks"

type fileFormat struct {
	Lists []*List `json:"lists"`
}

// Load reads the data file. A missing or unreadable file seeds one
// default list so the application always starts usable. ID counters
// resume past the highest stored ID.
func (m *Manager) Load() error {
	data, err := os.ReadFile(m.path)
	if errors.Is(err, fs.ErrNotExist) {
		m.log.Info("data file missing, starting fresh", "path", m.path)
		return m.seed()
	}
	if err != nil {
		return fmt.Errorf("read data file: %w", err)
	}

	var f fileFormat
	if err := json.Unmarshal(data, &f); err != nil {
		m.log.Warn("data file corrupt, starting fresh", "path", m.path, "error", err)
		return m.seed()
	}
	if len(f.Lists) == 0 {
		return m.seed()
	}

	m.lists = f.Lists
	m.nextListID = 1
	m.nextTaskID = 1
	for _, l := range m.lists {
		if l.ID >= m.nextListID {
			m.nextListID = l.ID + 1
		}
		for _, t := range l.Tasks {
			if t.ID >= m.nextTaskID {
				m.nextTaskID = t.ID + 1
			}
		}
	}
	m.log.Debug("data loaded", "lists", len(m.lists))
	return nil
}

func (m *Manager) seed() error {
	m.lists = nil
	m.nextListID = 1
	m.nextTaskID = 1
	_, err := m.CreateList(DefaultListTitle)
	return err
}

// Save writes the data file atomically, creating parent directories
// as needed.
func (m *Manager) Save() error {
	data, err := json.MarshalIndent(fileFormat{Lists: m.lists}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode data: %w", err)
	}
	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".tuido-*")
	if err != nil {
		return fmt.Errorf("write data file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write data file: %w", err)
	}
	if err := os.Rename(tmp.Name(), m.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write data file: %w", err)
	}
	m.log.Debug("data saved", "path", m.path)
	return nil
}
