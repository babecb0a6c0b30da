package session

import (
	"time"

	"masterplan/internal/domain"
	"masterplan/internal/snapshot"
)

// armAutoSave (re)starts the debounced auto-snapshot timer. Every dirty
// edit pushes the deadline out by the configured interval, so a snapshot
// only fires after a quiet period. Callers hold the lock.
func (c *Controller) armAutoSave() {
	interval := c.Config.SnapshotInterval()
	if interval <= 0 {
		return
	}
	if c.autoTimer != nil {
		c.autoTimer.Stop()
	}
	c.autoTimer = time.AfterFunc(interval, c.autoSnapshot)
}

func (c *Controller) disarmAutoSave() {
	if c.autoTimer != nil {
		c.autoTimer.Stop()
		c.autoTimer = nil
	}
}

// autoSnapshot runs on the timer goroutine. Failures are logged and never
// surfaced; the next edit re-arms the timer.
func (c *Controller) autoSnapshot() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.project == nil || !c.dirty {
		return
	}
	if _, err := c.Snapshots.Create(*c.project, snapshot.TypeAuto); err != nil {
		c.Log.WithError(err).Warn("auto snapshot failed")
	}
}

// CrashSnapshot captures the document before an unclean shutdown. It is a
// best-effort hook for signal handlers: errors are logged, never returned.
func (c *Controller) CrashSnapshot() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.project == nil || !c.dirty {
		return
	}
	if _, err := c.Snapshots.Create(*c.project, snapshot.TypeCrashRecovery); err != nil {
		c.Log.WithError(err).Warn("crash recovery snapshot failed")
	}
}

// RecoverLatest restores the most recent crash-recovery snapshot, when one
// exists. The recovered document is not bound to a save path, so the
// session comes up untitled with unsaved changes.
func (c *Controller) RecoverLatest() (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	info, ok := c.Snapshots.LatestCrashRecovery()
	if !ok {
		return false, nil
	}
	p, err := c.Snapshots.Load(info.Path)
	if err != nil {
		return false, err
	}
	c.installRecovered(p)
	return true, nil
}

// RestoreSnapshot loads an arbitrary snapshot file into the session.
func (c *Controller) RestoreSnapshot(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, err := c.Snapshots.Load(path)
	if err != nil {
		return err
	}
	c.installRecovered(p)
	return nil
}

func (c *Controller) installRecovered(p domain.Project) {
	c.project = &p
	c.state = StateEditing
	c.dirty = true
	c.untitled = true
	c.filePath = ""
	c.History.Clear()
	c.armAutoSave()
}
