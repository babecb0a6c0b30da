// Package session governs the document lifecycle: new/open/save/close, the
// dirty state machine, mutation entry points wired into the undo log, and
// the auto-snapshot scheduler.
package session

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"masterplan/internal/config"
	"masterplan/internal/domain"
	"masterplan/internal/pack"
	"masterplan/internal/recent"
	"masterplan/internal/snapshot"
	"masterplan/internal/storage"
	"masterplan/internal/undo"
)

// AppVersion is stamped into manifests as created_with_version.
const AppVersion = "1.0.0"

// State is the document lifecycle state. EDITING and DIRTY are
// distinguishable for UI purposes only; both mean unsaved changes.
type State string

const (
	StateUninitialized State = "UNINITIALIZED"
	StateUntitled      State = "UNTITLED"
	StateEditing       State = "EDITING"
	StateDirty         State = "DIRTY"
	StateSaved         State = "SAVED"
	StateClosing       State = "CLOSING"
)

var (
	ErrNoProject = errors.New("no project loaded")
	ErrNotFound  = errors.New("not found")
)

// Picker abstracts the native save/open file dialogs. An empty path with a
// nil error is a user cancellation; flows treat it as a silent no-op.
type Picker interface {
	SavePath() (string, error)
	OpenPath() (string, error)
}

// Controller is the session state machine. All document mutation goes
// through it; it serializes access so the off-thread auto-snapshot timer
// never races a user edit.
type Controller struct {
	Store     storage.Store
	Config    *config.Config
	Snapshots *snapshot.Manager
	Recents   *recent.List
	History   *undo.Log
	Picker    Picker
	Log       *logrus.Logger
	Now       func() time.Time

	mu        sync.Mutex
	project   *domain.Project
	state     State
	filePath  string
	dirty     bool
	untitled  bool
	autoTimer *time.Timer
}

// New wires a controller over the given store and config.
func New(store storage.Store, cfg *config.Config, picker Picker) *Controller {
	return &Controller{
		Store:     store,
		Config:    cfg,
		Snapshots: snapshot.NewManager(store, cfg),
		Recents:   recent.NewList(store, cfg),
		History:   undo.NewLog(cfg.Undo.Depth),
		Picker:    picker,
		Log:       logrus.StandardLogger(),
		Now:       time.Now,
		state:     StateUninitialized,
	}
}

func (c *Controller) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// --- lifecycle ---

// NewProject resets the session to an empty untitled document.
func (c *Controller) NewProject() domain.Project {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := domain.New(c.now())
	c.project = &p
	c.state = StateUntitled
	c.dirty = false
	c.untitled = true
	c.filePath = ""
	c.History.Clear()
	c.disarmAutoSave()
	return p
}

// Open loads a project through the file picker. Cancellation returns
// (nil, nil).
func (c *Controller) Open() (*domain.Project, error) {
	path, err := c.Picker.OpenPath()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return nil, nil
	}
	return c.OpenPath(path)
}

// OpenPath loads a project package from the given path and binds the
// session to it. History does not survive a document swap.
func (c *Controller) OpenPath(path string) (*domain.Project, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, err := c.Store.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project: %w", err)
	}
	res, err := pack.Decode(data, c.now())
	if err != nil {
		return nil, err
	}
	p := res.Project
	c.project = &p
	c.state = StateSaved
	c.dirty = false
	c.untitled = false
	c.filePath = path
	c.History.Clear()
	c.disarmAutoSave()
	if err := c.Recents.Record(p.Name, path, p.ID); err != nil {
		c.Log.WithError(err).Warn("recent-projects update failed")
	}
	return &p, nil
}

// Save writes the document to its bound path, asking the picker for one
// when the document is untitled. Cancellation returns ("", nil).
func (c *Controller) Save() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveLocked(c.filePath == "")
}

// SaveAs always asks the picker for a path.
func (c *Controller) SaveAs() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saveLocked(true)
}

func (c *Controller) saveLocked(pick bool) (string, error) {
	if c.project == nil {
		return "", ErrNoProject
	}
	path := c.filePath
	if pick {
		var err error
		path, err = c.Picker.SavePath()
		if err != nil {
			return "", err
		}
		if path == "" {
			return "", nil // user cancelled
		}
	}
	p := *c.project
	data, err := pack.Encode(p, pack.Options{
		CreatedBy:  c.Config.CreatedBy,
		Platform:   runtime.GOOS,
		AppVersion: AppVersion,
	})
	if err != nil {
		return "", err
	}
	if err := c.Store.WriteFile(path, data); err != nil {
		return "", fmt.Errorf("write project: %w", err)
	}
	if err := c.Recents.Record(p.Name, path, p.ID); err != nil {
		c.Log.WithError(err).Warn("recent-projects update failed")
	}
	if _, err := c.Snapshots.Create(p, snapshot.TypeManual); err != nil {
		return "", err
	}
	c.filePath = path
	c.untitled = false
	c.state = StateSaved
	c.dirty = false
	c.disarmAutoSave()
	return path, nil
}

// Close drives a save when the document is dirty; a failed save blocks the
// close and the failure propagates. A picker cancellation does not block.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.project == nil {
		return nil
	}
	prev := c.state
	c.state = StateClosing
	if c.dirty {
		if _, err := c.saveLocked(c.untitled); err != nil {
			c.state = prev
			return fmt.Errorf("save before close: %w", err)
		}
		c.state = StateClosing
	}
	c.disarmAutoSave()
	return nil
}

// --- state accessors ---

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Project returns a copy of the current document, or nil when none is
// loaded.
func (c *Controller) Project() *domain.Project {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.project == nil {
		return nil
	}
	p := *c.project
	return &p
}

func (c *Controller) FilePath() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filePath
}

func (c *Controller) HasUnsavedChanges() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dirty
}

func (c *Controller) IsUntitled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.untitled
}

func (c *Controller) CanUndo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.History.CanUndo()
}

func (c *Controller) CanRedo() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.History.CanRedo()
}

// markEdited applies the edit transition and re-arms the auto-snapshot
// timer. Callers hold the lock.
func (c *Controller) markEdited() {
	switch c.state {
	case StateSaved, StateUntitled, StateUninitialized:
		c.state = StateEditing
	case StateEditing:
		c.state = StateDirty
	}
	c.dirty = true
	c.armAutoSave()
}
