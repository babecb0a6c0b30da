// Package undo keeps a bounded, linear history of reversible task mutations.
package undo

import "masterplan/internal/domain"

// Kind tags the four tracked mutation kinds. Resource, team, budget and risk
// mutations are deliberately outside undo tracking.
type Kind string

const (
	KindEditTask       Kind = "edit-task"
	KindDeleteTask     Kind = "delete-task"
	KindCreateTask     Kind = "create-task"
	KindAssignResource Kind = "assign-resource"
)

// Item is one reversible edit: full before/after task snapshots. Before is
// nil for create-task, After is nil for delete-task. Items live only in
// memory and are never persisted.
type Item struct {
	Kind     Kind
	TargetID string
	Before   *domain.Task
	After    *domain.Task
}

// DefaultDepth is the default capacity of each stack.
const DefaultDepth = 50

// Log holds the undo and redo stacks. Not safe for concurrent use; the
// session controller serializes access.
type Log struct {
	undoStack []Item
	redoStack []Item
	depth     int
}

// NewLog returns a log bounded at depth entries per stack. A non-positive
// depth falls back to DefaultDepth.
func NewLog(depth int) *Log {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Log{depth: depth}
}

// Push records a fresh edit. When capacity is exceeded the oldest entry is
// evicted so recent history is always retained, and the redo stack is
// cleared: a new action invalidates any undone branch.
func (l *Log) Push(item Item) {
	l.undoStack = append(l.undoStack, item)
	if len(l.undoStack) > l.depth {
		l.undoStack = l.undoStack[1:]
	}
	l.redoStack = nil
}

// Undo pops the most recent edit onto the redo stack and returns it for
// inverse application. The second result is false when there is nothing to
// undo.
func (l *Log) Undo() (Item, bool) {
	if len(l.undoStack) == 0 {
		return Item{}, false
	}
	item := l.undoStack[len(l.undoStack)-1]
	l.undoStack = l.undoStack[:len(l.undoStack)-1]
	l.redoStack = append(l.redoStack, item)
	return item, true
}

// Redo is the inverse of Undo.
func (l *Log) Redo() (Item, bool) {
	if len(l.redoStack) == 0 {
		return Item{}, false
	}
	item := l.redoStack[len(l.redoStack)-1]
	l.redoStack = l.redoStack[:len(l.redoStack)-1]
	l.undoStack = append(l.undoStack, item)
	return item, true
}

// Clear empties both stacks. History does not carry across documents.
func (l *Log) Clear() {
	l.undoStack = nil
	l.redoStack = nil
}

func (l *Log) CanUndo() bool { return len(l.undoStack) > 0 }

func (l *Log) CanRedo() bool { return len(l.redoStack) > 0 }
