// Package snapshot persists timestamped copies of the current document and
// tracks them in a per-installation index, giving durability and crash
// recovery independent of explicit user saves.
package snapshot

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"masterplan/internal/config"
	"masterplan/internal/domain"
	"masterplan/internal/pack"
	"masterplan/internal/storage"
)

// Type classifies why a snapshot was taken.
type Type string

const (
	TypeAuto          Type = "Auto"
	TypeManual        Type = "Manual"
	TypeCrashRecovery Type = "Crash Recovery"
)

// Info is one index entry. The index is bookkeeping, not a source of truth:
// the snapshot file on disk is authoritative.
type Info struct {
	ProjectID string `json:"projectId"`
	Filename  string `json:"filename"`
	Timestamp string `json:"timestamp"`
	Type      Type   `json:"type"`
	Path      string `json:"path"`
}

// Manager writes, lists, restores and deletes snapshots through the injected
// storage service.
type Manager struct {
	Store     storage.Store
	Dir       string
	IndexFile string
	Now       func() time.Time
	Log       *logrus.Logger
}

// NewManager wires a manager from config.
func NewManager(store storage.Store, cfg *config.Config) *Manager {
	return &Manager{
		Store:     store,
		Dir:       cfg.Snapshots.Dir,
		IndexFile: cfg.Snapshots.IndexFile,
		Now:       time.Now,
		Log:       logrus.StandardLogger(),
	}
}

func (m *Manager) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

func (m *Manager) dirPath() string {
	return filepath.Join(m.Store.DataDir, m.Dir)
}

// IndexPath returns the shared snapshot index file path.
func (m *Manager) IndexPath() string {
	return filepath.Join(m.dirPath(), m.IndexFile)
}

// Create encodes the project into a uniquely named snapshot package and
// appends an entry to the index. The snapshot directory is created lazily.
func (m *Manager) Create(p domain.Project, typ Type) (Info, error) {
	dir := m.dirPath()
	if err := m.Store.MkdirAll(dir); err != nil {
		return Info{}, fmt.Errorf("create snapshot dir: %w", err)
	}
	ts := m.now().UTC().Format(time.RFC3339)
	filename := fmt.Sprintf("%s_%s.mpproj", safeName(p.Name), strings.ReplaceAll(ts, ":", "-"))
	path := filepath.Join(dir, filename)

	data, err := pack.Encode(p, pack.Options{SnapshotType: string(typ), CreatedAt: ts})
	if err != nil {
		return Info{}, fmt.Errorf("encode snapshot: %w", err)
	}
	if err := m.Store.WriteFile(path, data); err != nil {
		return Info{}, fmt.Errorf("write snapshot: %w", err)
	}

	info := Info{
		ProjectID: p.ID,
		Filename:  filename,
		Timestamp: ts,
		Type:      typ,
		Path:      path,
	}
	if err := m.appendIndex(info); err != nil {
		return Info{}, fmt.Errorf("update snapshot index: %w", err)
	}
	return info, nil
}

// ForProject returns all index entries for a project, in index order.
// Callers reverse for most-recent-first display.
func (m *Manager) ForProject(projectID string) ([]Info, error) {
	entries := m.readIndex()
	out := []Info{}
	for _, e := range entries {
		if e.ProjectID == projectID {
			out = append(out, e)
		}
	}
	return out, nil
}

// Load reconstructs a project from a snapshot package. CreatedAt is stamped
// from the capture time recorded in the snapshot manifest, updatedAt from
// now.
func (m *Manager) Load(path string) (domain.Project, error) {
	data, err := m.Store.ReadFile(path)
	if err != nil {
		return domain.Project{}, fmt.Errorf("read snapshot: %w", err)
	}
	res, err := pack.Decode(data, m.now())
	if err != nil {
		return domain.Project{}, err
	}
	p := res.Project
	if res.Manifest.CreatedAt != "" {
		p.CreatedAt = res.Manifest.CreatedAt
	}
	return p, nil
}

// Delete removes the snapshot file, then its index entry. The index update
// is best effort: the file is already gone either way.
func (m *Manager) Delete(path string) error {
	if err := m.Store.Remove(path); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	entries := m.readIndex()
	kept := entries[:0]
	for _, e := range entries {
		if e.Path != path {
			kept = append(kept, e)
		}
	}
	if err := m.writeIndex(kept); err != nil {
		m.Log.WithError(err).Warn("snapshot index update failed after delete")
	}
	return nil
}

// LatestCrashRecovery scans the index for the most recent Crash Recovery
// entry. A missing directory, index or entry is not an error: it signals
// nothing to recover.
func (m *Manager) LatestCrashRecovery() (Info, bool) {
	var best Info
	found := false
	for _, e := range m.readIndex() {
		if e.Type != TypeCrashRecovery {
			continue
		}
		if !found || e.Timestamp > best.Timestamp {
			best = e
			found = true
		}
	}
	return best, found
}

// readIndex loads the index, treating an absent or corrupt file as empty.
func (m *Manager) readIndex() []Info {
	data, err := m.Store.ReadFile(m.IndexPath())
	if err != nil {
		return []Info{}
	}
	var entries []Info
	if err := json.Unmarshal(data, &entries); err != nil {
		m.Log.WithError(err).Warn("snapshot index corrupt; starting fresh")
		return []Info{}
	}
	return entries
}

func (m *Manager) writeIndex(entries []Info) error {
	if entries == nil {
		entries = []Info{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return m.Store.WriteFile(m.IndexPath(), data)
}

func (m *Manager) appendIndex(info Info) error {
	return m.writeIndex(append(m.readIndex(), info))
}

// safeName strips path separators from a project name before it is embedded
// in a snapshot filename.
func safeName(name string) string {
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, "\\", "-")
	if name == "" {
		name = "untitled"
	}
	return name
}
