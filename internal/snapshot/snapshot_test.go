package snapshot_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masterplan/internal/config"
	"masterplan/internal/domain"
	"masterplan/internal/snapshot"
	"masterplan/internal/storage"
)

func newManager(t *testing.T) *snapshot.Manager {
	t.Helper()
	m := snapshot.NewManager(storage.NewMem(), config.Default())
	m.Now = func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) }
	return m
}

func sampleProject() domain.Project {
	p := domain.New(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	p.ID = "proj-1"
	p.Name = "Apollo"
	p.Tasks = []domain.Task{
		{ID: "t1", Name: "Design", Status: domain.TaskCompleted, AssignedTo: []string{}, Dependencies: []string{}, Attachments: []domain.Attachment{}},
	}
	p.Resources = []domain.Resource{{ID: "r1", Name: "Ada", Type: domain.ResourceHuman}}
	p.Budget = domain.RecalcBudget([]domain.BudgetCategory{{ID: "c1", Name: "Eng", Planned: 100, Actual: 25}}, "USD")
	p.Risks = []domain.Risk{{ID: "rk1", Name: "Delay", Status: domain.RiskIdentified}}
	return p
}

func TestCreateAndLoadRoundTrip(t *testing.T) {
	m := newManager(t)
	p := sampleProject()

	info, err := m.Create(p, snapshot.TypeManual)
	require.NoError(t, err)
	assert.Equal(t, "proj-1", info.ProjectID)
	assert.Equal(t, snapshot.TypeManual, info.Type)
	assert.Contains(t, info.Filename, "Apollo_")
	assert.NotContains(t, info.Filename, ":")
	assert.True(t, m.Store.Exists(info.Path))

	restored, err := m.Load(info.Path)
	require.NoError(t, err)
	assert.Equal(t, p.Tasks, restored.Tasks)
	assert.Equal(t, p.Resources, restored.Resources)
	assert.Equal(t, p.Budget, restored.Budget)
	assert.Equal(t, p.Risks, restored.Risks)
	// createdAt comes from the capture time, not the load time
	assert.Equal(t, "2024-03-15T12:00:00Z", restored.CreatedAt)
}

func TestForProjectFiltersAndOrders(t *testing.T) {
	m := newManager(t)
	p := sampleProject()
	other := sampleProject()
	other.ID = "proj-2"
	other.Name = "Zeus"

	times := []time.Time{
		time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC),
	}
	i := 0
	m.Now = func() time.Time { t := times[i%len(times)]; i++; return t }

	_, err := m.Create(p, snapshot.TypeAuto)
	require.NoError(t, err)
	_, err = m.Create(other, snapshot.TypeAuto)
	require.NoError(t, err)

	got, err := m.ForProject("proj-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "proj-1", got[0].ProjectID)
}

func TestDeleteRemovesFileAndEntry(t *testing.T) {
	m := newManager(t)
	info, err := m.Create(sampleProject(), snapshot.TypeManual)
	require.NoError(t, err)

	require.NoError(t, m.Delete(info.Path))
	assert.False(t, m.Store.Exists(info.Path))
	got, err := m.ForProject("proj-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLatestCrashRecoverySelection(t *testing.T) {
	m := newManager(t)
	p := sampleProject()
	stamps := []time.Time{
		time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 15, 11, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
	}
	i := 0
	m.Now = func() time.Time { t := stamps[i]; i++; return t }

	_, err := m.Create(p, snapshot.TypeCrashRecovery)
	require.NoError(t, err)
	latest, err := m.Create(p, snapshot.TypeCrashRecovery)
	require.NoError(t, err)
	_, err = m.Create(p, snapshot.TypeCrashRecovery)
	require.NoError(t, err)

	got, ok := m.LatestCrashRecovery()
	require.True(t, ok)
	assert.Equal(t, latest.Path, got.Path)
	assert.Equal(t, "2024-03-15T11:00:00Z", got.Timestamp)
}

func TestLatestCrashRecoveryNothingToRecover(t *testing.T) {
	m := newManager(t)
	// no directory, no index
	_, ok := m.LatestCrashRecovery()
	assert.False(t, ok)

	// index exists but holds no crash entries
	_, err := m.Create(sampleProject(), snapshot.TypeManual)
	require.NoError(t, err)
	_, ok = m.LatestCrashRecovery()
	assert.False(t, ok)
}

func TestCorruptIndexSelfHeals(t *testing.T) {
	m := newManager(t)
	require.NoError(t, m.Store.WriteFile(m.IndexPath(), []byte("{{not json")))

	// listing treats the corrupt index as empty
	got, err := m.ForProject("proj-1")
	require.NoError(t, err)
	assert.Empty(t, got)

	// the next successful write heals it
	info, err := m.Create(sampleProject(), snapshot.TypeAuto)
	require.NoError(t, err)
	got, err = m.ForProject("proj-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, info.Path, got[0].Path)
}
