package pack

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"masterplan/internal/domain"
)

// Decoding is an ordered pipeline of candidate decoders; the first candidate
// that accepts the bytes wins. This keeps the flat-JSON compatibility path
// and the archive path independently testable.
type candidate struct {
	name string
	fn   func(data []byte, now time.Time) (Result, error)
}

var candidates = []candidate{
	{"flat-json", decodeFlat},
	{"archive", decodeArchive},
}

// Decode reconstructs a project from package bytes. Progress is always
// recomputed from the loaded tasks, and createdAt/updatedAt are stamped at
// decode time (snapshot loads re-stamp createdAt from the manifest).
func Decode(data []byte, now time.Time) (Result, error) {
	var lastErr error
	for _, c := range candidates {
		res, err := c.fn(data, now)
		if err == nil {
			return res, nil
		}
		lastErr = fmt.Errorf("%s: %w", c.name, err)
	}
	return Result{}, fmt.Errorf("%w: %v", ErrInvalidFormat, lastErr)
}

// flatDocument is the very early single-file export: one JSON object holding
// every member under a top-level key.
type flatDocument struct {
	Manifest   *Manifest          `json:"manifest"`
	Project    *projectMember     `json:"project"`
	Tasks      []domain.Task      `json:"tasks"`
	Resources  []domain.Resource  `json:"resources"`
	Milestones []domain.Milestone `json:"milestones"`
	Teams      []domain.Team      `json:"teams"`
	Budget     *domain.Budget     `json:"budget"`
	Costs      []domain.CostItem  `json:"costs"`
	Risks      []domain.Risk      `json:"risks"`
}

func decodeFlat(data []byte, now time.Time) (Result, error) {
	var doc flatDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return Result{}, err
	}
	var m Manifest
	if doc.Manifest != nil {
		m = *doc.Manifest
	}
	var pm projectMember
	if doc.Project != nil {
		pm = *doc.Project
	}
	p := assemble(m, pm, collections{
		tasks:      doc.Tasks,
		resources:  doc.Resources,
		milestones: doc.Milestones,
		teams:      doc.Teams,
		budget:     doc.Budget,
		costs:      doc.Costs,
		risks:      doc.Risks,
	}, now)
	return Result{Project: p, Manifest: m}, nil
}

func decodeArchive(data []byte, now time.Time) (Result, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return Result{}, err
	}
	manifestRaw, ok := readMember(zr, MemberManifest)
	if !ok {
		return Result{}, fmt.Errorf("missing mandatory member %s", MemberManifest)
	}
	projectRaw, ok := readMember(zr, MemberProject)
	if !ok {
		return Result{}, fmt.Errorf("missing mandatory member %s", MemberProject)
	}
	var m Manifest
	if err := json.Unmarshal(manifestRaw, &m); err != nil {
		return Result{}, fmt.Errorf("parse %s: %w", MemberManifest, err)
	}
	var pm projectMember
	if err := json.Unmarshal(projectRaw, &pm); err != nil {
		return Result{}, fmt.Errorf("parse %s: %w", MemberProject, err)
	}

	var cols collections
	readOptional(zr, MemberTasks, &cols.tasks)
	readOptional(zr, MemberResources, &cols.resources)
	readOptional(zr, MemberMilestones, &cols.milestones)
	readOptional(zr, MemberTeams, &cols.teams)
	readOptional(zr, MemberBudget, &cols.budget)
	readOptional(zr, MemberRiskLog, &cols.risks)
	// canonical name first, then the legacy plural
	if !readOptional(zr, MemberCost, &cols.costs) {
		readOptional(zr, MemberCostLegacy, &cols.costs)
	}

	p := assemble(m, pm, cols, now)
	return Result{Project: p, Manifest: m}, nil
}

type collections struct {
	tasks      []domain.Task
	resources  []domain.Resource
	milestones []domain.Milestone
	teams      []domain.Team
	budget     *domain.Budget
	costs      []domain.CostItem
	risks      []domain.Risk
}

// assemble applies the default-fallback rule to every field and recomputes
// derived values.
func assemble(m Manifest, pm projectMember, cols collections, now time.Time) domain.Project {
	id := m.ProjectUUID
	if id == "" {
		id = uuid.New().String()
	}
	name := pm.ProjectName
	if name == "" {
		name = "Untitled Project"
	}
	ts := now.UTC().Format(time.RFC3339)
	start := pm.StartDate
	if start == "" {
		start = ts
	}
	end := pm.EndDate
	if end == "" {
		end = now.UTC().Add(30 * 24 * time.Hour).Format(time.RFC3339)
	}
	budget := domain.EmptyBudget()
	if cols.budget != nil {
		budget = *cols.budget
	}
	tasks := cols.tasks
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return domain.Project{
		ID:          id,
		Name:        name,
		Description: pm.Description,
		StartDate:   start,
		EndDate:     end,
		Status:      domain.ProjectActive,
		Progress:    domain.CalculateProgress(tasks),
		Tasks:       tasks,
		Resources:   orEmpty(cols.resources),
		Milestones:  orEmpty(cols.milestones),
		Teams:       orEmpty(cols.teams),
		Budget:      budget,
		Costs:       orEmpty(cols.costs),
		Risks:       orEmpty(cols.risks),
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}

func orEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}

func readMember(zr *zip.Reader, name string) ([]byte, bool) {
	f, err := zr.Open(name)
	if err != nil {
		return nil, false
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, false
	}
	return data, true
}

// readOptional loads a member into out; a missing or corrupt member leaves
// out untouched so the caller's default stands.
func readOptional(zr *zip.Reader, name string, out any) bool {
	data, ok := readMember(zr, name)
	if !ok {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false
	}
	return true
}
