package undo_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masterplan/internal/domain"
	"masterplan/internal/undo"
)

func editItem(id string) undo.Item {
	before := domain.Task{ID: id, Name: "before"}
	after := domain.Task{ID: id, Name: "after"}
	return undo.Item{Kind: undo.KindEditTask, TargetID: id, Before: &before, After: &after}
}

func TestUndoRedoLIFO(t *testing.T) {
	l := undo.NewLog(0)
	l.Push(editItem("A"))
	l.Push(editItem("B"))

	item, ok := l.Undo()
	require.True(t, ok)
	assert.Equal(t, "B", item.TargetID)

	item, ok = l.Redo()
	require.True(t, ok)
	assert.Equal(t, "B", item.TargetID)

	item, ok = l.Undo()
	require.True(t, ok)
	assert.Equal(t, "B", item.TargetID)
	item, ok = l.Undo()
	require.True(t, ok)
	assert.Equal(t, "A", item.TargetID)

	_, ok = l.Undo()
	assert.False(t, ok, "empty stack signals nothing to undo")
}

func TestPushClearsRedo(t *testing.T) {
	l := undo.NewLog(0)
	l.Push(editItem("A"))
	l.Push(editItem("B"))

	_, ok := l.Undo()
	require.True(t, ok)
	require.True(t, l.CanRedo())

	l.Push(editItem("C"))
	assert.False(t, l.CanRedo())
	_, ok = l.Redo()
	assert.False(t, ok, "new push invalidates the redo branch")
}

func TestEvictionKeepsRecentHistory(t *testing.T) {
	l := undo.NewLog(50)
	for i := 1; i <= 51; i++ {
		l.Push(editItem(fmt.Sprintf("item-%d", i)))
	}
	seen := []string{}
	for {
		item, ok := l.Undo()
		if !ok {
			break
		}
		seen = append(seen, item.TargetID)
	}
	require.Len(t, seen, 50)
	assert.Equal(t, "item-51", seen[0], "newest entry present")
	assert.Equal(t, "item-2", seen[49], "oldest entry evicted")
}

func TestClear(t *testing.T) {
	l := undo.NewLog(0)
	l.Push(editItem("A"))
	_, _ = l.Undo()
	l.Clear()
	assert.False(t, l.CanUndo())
	assert.False(t, l.CanRedo())
}
