// Package docmigration upgrades stored document trees between format
// versions. Migrations are sequential: a document at version N is run through
// every registered N→N+1 step until it reaches the current version. This is
// the one place in the engine that fails hard: there is no safe default for
// a document the running format does not understand.
package docmigration

import (
	"fmt"

	"contract-editor-be/pkg/doctree"
)

// CurrentVersion is the document format version this build writes.
const CurrentVersion = 3

// Error kinds.
const (
	ErrKindNoPath        = "no_migration_path"
	ErrKindNewerDocument = "document_newer_than_supported"
)

// MigrationError is the typed failure surfaced when a document cannot be
// brought to the current format version.
type MigrationError struct {
	Kind        string
	DocVersion  int
	FromVersion int
}

func (e *MigrationError) Error() string {
	switch e.Kind {
	case ErrKindNewerDocument:
		return fmt.Sprintf("document format version %d is newer than supported version %d", e.DocVersion, CurrentVersion)
	default:
		return fmt.Sprintf("no migration registered from format version %d", e.FromVersion)
	}
}

// Step upgrades a document tree one version forward.
type Step func(doctree.Node) (doctree.Node, error)

// Registry maps a source version to the step that upgrades it.
type Registry struct {
	steps map[int]Step
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{steps: make(map[int]Step)}
}

// Register installs the step that upgrades documents at fromVersion.
func (r *Registry) Register(fromVersion int, step Step) {
	r.steps[fromVersion] = step
}

// DocumentVersion reads the format version from the root node attrs. Missing
// or malformed versions are treated as version 1, the pre-versioning format.
func DocumentVersion(doc doctree.Node) int {
	if doc.Attrs == nil {
		return 1
	}
	switch v := doc.Attrs["version"].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 1
	}
}

// NeedsMigration reports whether the document is below the current version.
func (r *Registry) NeedsMigration(doc doctree.Node) bool {
	return DocumentVersion(doc) < CurrentVersion
}

// Migrate applies registered steps sequentially until the document reaches
// the current version, then stamps the version on the root attrs. Documents
// claiming a newer version than this build supports fail with a typed
// MigrationError, as does a version gap with no registered step.
func (r *Registry) Migrate(doc doctree.Node) (doctree.Node, error) {
	version := DocumentVersion(doc)

	if version > CurrentVersion {
		return doctree.Node{}, &MigrationError{Kind: ErrKindNewerDocument, DocVersion: version}
	}

	for version < CurrentVersion {
		step, ok := r.steps[version]
		if !ok {
			return doctree.Node{}, &MigrationError{Kind: ErrKindNoPath, FromVersion: version}
		}
		migrated, err := step(doc)
		if err != nil {
			return doctree.Node{}, fmt.Errorf("migrating from version %d: %w", version, err)
		}
		doc = migrated
		version++
	}

	out := doc
	out.Attrs = make(map[string]any, len(doc.Attrs)+1)
	for k, v := range doc.Attrs {
		out.Attrs[k] = v
	}
	out.Attrs["version"] = float64(CurrentVersion)
	return out, nil
}
