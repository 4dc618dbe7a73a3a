// Package secondary defines the driven ports of the scaffolding pipeline.
package secondary

import (
	"context"
	"time"

	"github.com/example/springscaffold/internal/core/patch"
)

// NamespaceDetector infers a project's base namespace from its source tree.
type NamespaceDetector interface {
	// Detect never fails: when nothing matches it returns the fallback namespace.
	Detect(projectRoot string) string
}

// TemplateRenderer binds a context to a named template.
type TemplateRenderer interface {
	// Render returns *scaffolderr.TemplateError when the template is missing, does not
	// parse, or does not fit the data.
	Render(name string, data map[string]any) (string, error)
}

// PatchOutcome classifies a Patch call.
type PatchOutcome string

const (
	PatchApplied   PatchOutcome = "applied"
	PatchUnchanged PatchOutcome = "unchanged"
	PatchSkipped   PatchOutcome = "skipped"
)

// SourceWriter persists generated sources without clobbering existing files.
type SourceWriter interface {
	// SourcePath returns where Write would place namespace/baseName under root.
	SourcePath(root, namespace, baseName string) string

	// Write creates <root>/<source root>/<namespace dirs>/<baseName>.java. It returns
	// scaffolderr.ErrAlreadyExists (wrapped with the path) if the file is present.
	Write(ctx context.Context, root, namespace, baseName, content string) (string, error)

	// WriteFile creates root/relPath under the same create-only contract.
	WriteFile(ctx context.Context, root, relPath, content string) (string, error)

	// Patch splices spec into an existing file. A missing file or anchor is a
	// PatchSkipped outcome, not an error.
	Patch(ctx context.Context, path string, spec patch.Spec) (PatchOutcome, error)

	// DryRun reports whether writes are only simulated.
	DryRun() bool
}

// JournalRepository records generated artifacts.
type JournalRepository interface {
	// Record persists one journal entry.
	Record(ctx context.Context, entry *JournalRecord) error

	// List returns the most recent entries, newest first.
	List(ctx context.Context, limit int) ([]*JournalRecord, error)
}

// JournalRecord represents one generated (or skipped) artifact as stored in the journal.
type JournalRecord struct {
	ID        int64
	RunID     string
	Command   string
	Artifact  string
	Path      string
	Outcome   string
	CreatedAt time.Time
}
