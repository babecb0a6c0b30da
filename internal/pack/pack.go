// Package pack converts a project document to and from the portable .mpproj
// package: a zip archive of pretty-printed JSON members, with a read-only
// compatibility path for the early flat single-JSON export.
package pack

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"masterplan/internal/domain"
)

// FileVersion is the on-disk package format version.
const FileVersion = "1.0.0"

// Archive member names. The cost member is written under the canonical
// singular name; the plural name is a legacy read fallback only.
const (
	MemberManifest   = "manifest.json"
	MemberProject    = "project.json"
	MemberTasks      = "tasks.json"
	MemberResources  = "resources.json"
	MemberMilestones = "milestones.json"
	MemberTeams      = "teams.json"
	MemberBudget     = "budget.json"
	MemberCost       = "cost.json"
	MemberCostLegacy = "costs.json"
	MemberRiskLog    = "risklog.json"

	dirAttachments = "attachments/"
	dirMeta        = "meta/"
)

// ErrInvalidFormat reports bytes that are neither a readable flat document
// nor a valid archive with the mandatory members.
var ErrInvalidFormat = errors.New("invalid package format")

// Manifest identifies a package: document identity plus format bookkeeping.
// Save packages carry platform/app-version fields, snapshots carry the
// capture time and snapshot type.
type Manifest struct {
	ProjectUUID        string `json:"project_uuid"`
	FileVersion        string `json:"file_version"`
	CreatedPlatform    string `json:"created_platform,omitempty"`
	CreatedWithVersion string `json:"created_with_version,omitempty"`
	CreatedAt          string `json:"created_at,omitempty"`
	SnapshotType       string `json:"snapshot_type,omitempty"`
}

type projectMember struct {
	ProjectName string `json:"project_name"`
	Description string `json:"description"`
	CreatedBy   string `json:"created_by,omitempty"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// Options controls the manifest written by Encode.
type Options struct {
	CreatedBy    string
	Platform     string
	AppVersion   string
	SnapshotType string // non-empty marks the package as a snapshot
	CreatedAt    string // capture time, snapshots only
}

// Result is a decoded package: the reconstructed project and the manifest it
// was read from.
type Result struct {
	Project  domain.Project
	Manifest Manifest
}

// Encode serializes a project into an .mpproj archive. Every member is
// pretty-printed UTF-8 JSON so packages stay diffable and individually
// recoverable.
func Encode(p domain.Project, opts Options) ([]byte, error) {
	m := Manifest{
		ProjectUUID: p.ID,
		FileVersion: FileVersion,
	}
	if opts.SnapshotType != "" {
		m.CreatedAt = opts.CreatedAt
		m.SnapshotType = opts.SnapshotType
	} else {
		m.CreatedPlatform = opts.Platform
		m.CreatedWithVersion = opts.AppVersion
	}
	pm := projectMember{
		ProjectName: p.Name,
		Description: p.Description,
		CreatedBy:   opts.CreatedBy,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	members := []struct {
		name string
		v    any
	}{
		{MemberManifest, m},
		{MemberProject, pm},
		{MemberTasks, p.Tasks},
		{MemberResources, p.Resources},
		{MemberMilestones, p.Milestones},
		{MemberTeams, p.Teams},
		{MemberBudget, p.Budget},
		{MemberCost, p.Costs},
		{MemberRiskLog, p.Risks},
	}
	for _, mb := range members {
		if err := writeMember(zw, mb.name, mb.v); err != nil {
			return nil, err
		}
	}
	// reserved for future attachment and metadata storage
	for _, dir := range []string{dirAttachments, dirMeta} {
		if _, err := zw.Create(dir); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeMember(zw *zip.Writer, name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	w, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}
