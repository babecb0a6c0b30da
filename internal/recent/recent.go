// Package recent maintains the capped recent-projects list shared by the
// installation.
package recent

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"masterplan/internal/config"
	"masterplan/internal/storage"
)

// Entry is one recently opened project.
type Entry struct {
	FileName    string `json:"fileName"`
	FilePath    string `json:"filePath"`
	OpenedAt    string `json:"openedAt"`
	ProjectUUID string `json:"projectUUID"`
	IsTemporary bool   `json:"isTemporary"`
}

// List reads and rewrites the shared recent-projects file. Entries are keyed
// by project UUID for upsert; beyond the cap the oldest entries drop first.
type List struct {
	Store storage.Store
	File  string
	Limit int
	Now   func() time.Time
	Log   *logrus.Logger
}

// NewList wires a list from config.
func NewList(store storage.Store, cfg *config.Config) *List {
	return &List{
		Store: store,
		File:  cfg.Recent.File,
		Limit: cfg.Recent.Limit,
		Now:   time.Now,
		Log:   logrus.StandardLogger(),
	}
}

// Path returns the recent-projects file path.
func (l *List) Path() string {
	return filepath.Join(l.Store.DataDir, l.File)
}

// Record upserts an entry for the project and rewrites the list.
func (l *List) Record(name, path, projectUUID string) error {
	entries := l.read()
	entry := Entry{
		FileName:    name,
		FilePath:    path,
		OpenedAt:    l.Now().UTC().Format(time.RFC3339),
		ProjectUUID: projectUUID,
	}
	replaced := false
	for i := range entries {
		if entries[i].ProjectUUID == projectUUID {
			entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}
	if len(entries) > l.Limit {
		entries = entries[len(entries)-l.Limit:]
	}
	return l.write(entries)
}

// Entries returns the list, oldest first. An absent or corrupt file reads as
// empty.
func (l *List) Entries() []Entry {
	return l.read()
}

// RemoveByPath drops the entry bound to a file path, if present.
func (l *List) RemoveByPath(path string) error {
	entries := l.read()
	kept := entries[:0]
	for _, e := range entries {
		if e.FilePath != path {
			kept = append(kept, e)
		}
	}
	return l.write(kept)
}

func (l *List) read() []Entry {
	data, err := l.Store.ReadFile(l.Path())
	if err != nil {
		return []Entry{}
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		l.Log.WithError(err).Warn("recent-projects list corrupt; starting fresh")
		return []Entry{}
	}
	return entries
}

func (l *List) write(entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal recent projects: %w", err)
	}
	return l.Store.WriteFile(l.Path(), data)
}
