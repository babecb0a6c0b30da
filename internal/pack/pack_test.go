package pack_test

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"masterplan/internal/domain"
	"masterplan/internal/pack"
)

var now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func sampleProject() domain.Project {
	p := domain.New(now)
	p.ID = "11111111-2222-3333-4444-555555555555"
	p.Name = "Apollo"
	p.Description = "Launch readiness"
	p.Status = domain.ProjectActive
	p.Tasks = []domain.Task{
		{ID: "t1", Name: "Design", Status: domain.TaskCompleted, Priority: domain.PriorityHigh, AssignedTo: []string{"r1"}, Dependencies: []string{}, Attachments: []domain.Attachment{}},
		{ID: "t2", Name: "Build", Status: domain.TaskInProgress, Priority: domain.PriorityMedium, AssignedTo: []string{}, Dependencies: []string{"t1"}, Attachments: []domain.Attachment{}},
	}
	p.Progress = domain.CalculateProgress(p.Tasks)
	p.Resources = []domain.Resource{
		{ID: "r1", Name: "Ada", Type: domain.ResourceHuman, Role: "engineer", Cost: 120, Availability: []domain.Availability{{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"}}, Utilization: 80, TeamID: "tm1"},
	}
	p.Teams = []domain.Team{{ID: "tm1", Name: "Core", Members: []string{"r1"}}}
	p.Milestones = []domain.Milestone{{ID: "m1", Name: "Alpha", Date: "2024-04-01T00:00:00Z", Status: domain.MilestoneUpcoming, TaskIDs: []string{"t1", "t2"}}}
	p.Budget = domain.RecalcBudget([]domain.BudgetCategory{
		{ID: "c1", Name: "Engineering", Planned: 10000, Actual: 2500},
	}, "USD")
	p.Costs = []domain.CostItem{
		{ID: "ci1", TaskID: "t1", Amount: 2500, Category: domain.CostPersonnel, Currency: "USD", Date: "2024-03-10T00:00:00Z", Status: domain.CostPaid},
	}
	p.Risks = []domain.Risk{{ID: "rk1", Name: "Supply delay", Probability: "medium", Impact: "high", Status: domain.RiskIdentified, Owner: "r1"}}
	return p
}

// semanticEqual compares everything the round-trip guarantee covers; status,
// progress and timestamps are re-derived on decode.
func semanticEqual(t *testing.T, want, got domain.Project) {
	t.Helper()
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.Description, got.Description)
	assert.Equal(t, want.StartDate, got.StartDate)
	assert.Equal(t, want.EndDate, got.EndDate)
	assert.Equal(t, want.Tasks, got.Tasks)
	assert.Equal(t, want.Resources, got.Resources)
	assert.Equal(t, want.Milestones, got.Milestones)
	assert.Equal(t, want.Teams, got.Teams)
	assert.Equal(t, want.Budget, got.Budget)
	assert.Equal(t, want.Costs, got.Costs)
	assert.Equal(t, want.Risks, got.Risks)
	assert.Equal(t, domain.CalculateProgress(got.Tasks), got.Progress)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	p := sampleProject()
	data, err := pack.Encode(p, pack.Options{CreatedBy: "User", Platform: "linux", AppVersion: "1.0.0"})
	require.NoError(t, err)

	res, err := pack.Decode(data, now)
	require.NoError(t, err)
	semanticEqual(t, p, res.Project)
	assert.Equal(t, p.ID, res.Manifest.ProjectUUID)
	assert.Equal(t, pack.FileVersion, res.Manifest.FileVersion)
	assert.Equal(t, "linux", res.Manifest.CreatedPlatform)
}

func TestRoundTripZeroTasks(t *testing.T) {
	p := sampleProject()
	p.Tasks = []domain.Task{}
	p.Progress = 0
	data, err := pack.Encode(p, pack.Options{})
	require.NoError(t, err)
	res, err := pack.Decode(data, now)
	require.NoError(t, err)
	semanticEqual(t, p, res.Project)
	assert.Equal(t, 0, res.Project.Progress)
}

func TestRoundTripMilestonesOnly(t *testing.T) {
	p := domain.New(now)
	p.Name = "Milestones only"
	p.Milestones = []domain.Milestone{{ID: "m1", Name: "Kickoff", Date: "2024-04-01T00:00:00Z", Status: domain.MilestoneUpcoming, TaskIDs: []string{}}}
	data, err := pack.Encode(p, pack.Options{})
	require.NoError(t, err)
	res, err := pack.Decode(data, now)
	require.NoError(t, err)
	semanticEqual(t, p, res.Project)
}

func TestRoundTripLegacyCostCategory(t *testing.T) {
	p := sampleProject()
	p.Costs = []domain.CostItem{
		{ID: "ci1", TaskID: "t1", Amount: 100, Category: "人事", Currency: "TWD", Date: "2024-03-01T00:00:00Z", Status: domain.CostPending},
	}
	data, err := pack.Encode(p, pack.Options{})
	require.NoError(t, err)
	res, err := pack.Decode(data, now)
	require.NoError(t, err)
	assert.Equal(t, p.Costs, res.Project.Costs)
}

// buildArchive hand-builds a package with arbitrary member names.
func buildArchive(t *testing.T, members map[string]any) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, v := range members {
		data, err := json.MarshalIndent(v, "", "  ")
		require.NoError(t, err)
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestLegacyCostsMemberName(t *testing.T) {
	costs := []domain.CostItem{
		{ID: "ci1", TaskID: "t1", Amount: 42, Category: domain.CostOther, Currency: "USD", Date: "2024-01-02T00:00:00Z", Status: domain.CostPending},
	}
	base := map[string]any{
		"manifest.json": pack.Manifest{ProjectUUID: "p-1", FileVersion: pack.FileVersion},
		"project.json":  map[string]string{"project_name": "Legacy", "start_date": "2024-01-01T00:00:00Z", "end_date": "2024-02-01T00:00:00Z"},
	}

	withLegacy := map[string]any{"costs.json": costs}
	withCanonical := map[string]any{"cost.json": costs}
	for k, v := range base {
		withLegacy[k] = v
		withCanonical[k] = v
	}

	legacyRes, err := pack.Decode(buildArchive(t, withLegacy), now)
	require.NoError(t, err)
	canonRes, err := pack.Decode(buildArchive(t, withCanonical), now)
	require.NoError(t, err)
	assert.Equal(t, canonRes.Project.Costs, legacyRes.Project.Costs)
	assert.Equal(t, costs, legacyRes.Project.Costs)
}

func TestDecodeFlatLegacyDocument(t *testing.T) {
	flat := map[string]any{
		"manifest": map[string]string{"project_uuid": "flat-1", "file_version": "1.0.0"},
		"project": map[string]string{
			"project_name": "Flat", "description": "old export",
			"start_date": "2024-01-01T00:00:00Z", "end_date": "2024-02-01T00:00:00Z",
		},
		"tasks": []domain.Task{{ID: "t1", Name: "Only", Status: domain.TaskCompleted}},
		"costs": []domain.CostItem{{ID: "c1", TaskID: "t1", Amount: 5, Category: domain.CostOther, Currency: "USD", Status: domain.CostPaid}},
	}
	data, err := json.Marshal(flat)
	require.NoError(t, err)

	res, err := pack.Decode(data, now)
	require.NoError(t, err)
	assert.Equal(t, "flat-1", res.Project.ID)
	assert.Equal(t, "Flat", res.Project.Name)
	assert.Len(t, res.Project.Tasks, 1)
	assert.Len(t, res.Project.Costs, 1)
	assert.Equal(t, 100, res.Project.Progress)
	// missing members default
	assert.Empty(t, res.Project.Resources)
	assert.Equal(t, domain.EmptyBudget(), res.Project.Budget)
}

func TestDecodeDefaults(t *testing.T) {
	// archive with only the mandatory members, project member empty
	data := buildArchive(t, map[string]any{
		"manifest.json": pack.Manifest{FileVersion: pack.FileVersion},
		"project.json":  map[string]string{},
	})
	res, err := pack.Decode(data, now)
	require.NoError(t, err)
	p := res.Project
	assert.NotEmpty(t, p.ID) // freshly generated
	assert.Equal(t, "Untitled Project", p.Name)
	assert.Equal(t, now.UTC().Format(time.RFC3339), p.StartDate)
	assert.Equal(t, now.UTC().Add(30*24*time.Hour).Format(time.RFC3339), p.EndDate)
	assert.Equal(t, domain.ProjectActive, p.Status)
	assert.Empty(t, p.Tasks)
	assert.Equal(t, domain.EmptyBudget(), p.Budget)
}

func TestDecodeMissingMandatoryMember(t *testing.T) {
	data := buildArchive(t, map[string]any{
		"manifest.json": pack.Manifest{ProjectUUID: "p-1", FileVersion: pack.FileVersion},
		// no project.json
	})
	_, err := pack.Decode(data, now)
	require.Error(t, err)
	assert.ErrorIs(t, err, pack.ErrInvalidFormat)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := pack.Decode([]byte("\x00\x01definitely not a package"), now)
	require.Error(t, err)
	assert.ErrorIs(t, err, pack.ErrInvalidFormat)
}

func TestEncodeWritesCanonicalMembers(t *testing.T) {
	p := sampleProject()
	data, err := pack.Encode(p, pack.Options{})
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	names := map[string]bool{}
	for _, f := range zr.File {
		names[f.Name] = true
	}
	for _, want := range []string{
		"manifest.json", "project.json", "tasks.json", "resources.json",
		"milestones.json", "teams.json", "budget.json", "cost.json", "risklog.json",
		"attachments/", "meta/",
	} {
		assert.True(t, names[want], "missing member %s", want)
	}
	assert.False(t, names["costs.json"], "legacy name must not be written")
}

func TestSnapshotManifestFields(t *testing.T) {
	p := sampleProject()
	data, err := pack.Encode(p, pack.Options{SnapshotType: "Manual", CreatedAt: "2024-03-15T12:00:00Z"})
	require.NoError(t, err)
	res, err := pack.Decode(data, now)
	require.NoError(t, err)
	assert.Equal(t, "Manual", res.Manifest.SnapshotType)
	assert.Equal(t, "2024-03-15T12:00:00Z", res.Manifest.CreatedAt)
	assert.Empty(t, res.Manifest.CreatedPlatform)
}
