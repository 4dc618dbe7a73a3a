package filesystem

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/example/springscaffold/internal/core/namespace"
	"github.com/example/springscaffold/internal/core/patch"
	"github.com/example/springscaffold/internal/ports/secondary"
	"github.com/example/springscaffold/internal/scaffolderr"
)

// SourceExtension is the extension of generated source files.
const SourceExtension = ".java"

// Materializer implements secondary.SourceWriter. It never overwrites a file it did not
// create in the current call; patches only splice into existing files.
type Materializer struct {
	sourceRoot string
	dryRun     bool
	logger     *slog.Logger
}

// NewMaterializer creates a materializer. In dry-run mode paths are computed and checked
// but nothing is written.
func NewMaterializer(sourceRoot string, dryRun bool, logger *slog.Logger) *Materializer {
	if sourceRoot == "" {
		sourceRoot = DefaultSourceRoot
	}
	return &Materializer{sourceRoot: sourceRoot, dryRun: dryRun, logger: logger}
}

// DryRun reports whether the materializer only simulates writes.
func (m *Materializer) DryRun() bool {
	return m.dryRun
}

// SourcePath returns root/<source root>/<namespace as dirs>/<baseName>.java.
func (m *Materializer) SourcePath(root, ns, baseName string) string {
	return filepath.Join(root, filepath.FromSlash(m.sourceRoot), filepath.FromSlash(namespace.ToPath(ns)), baseName+SourceExtension)
}

// Write creates the source file for baseName in namespace ns.
func (m *Materializer) Write(ctx context.Context, root, ns, baseName, content string) (string, error) {
	return m.create(m.SourcePath(root, ns, baseName), content)
}

// WriteFile creates root/relPath.
func (m *Materializer) WriteFile(ctx context.Context, root, relPath, content string) (string, error) {
	return m.create(filepath.Join(root, filepath.FromSlash(relPath)), content)
}

func (m *Materializer) create(path, content string) (string, error) {
	if _, err := os.Lstat(path); err == nil {
		return path, errors.Wrap(scaffolderr.ErrAlreadyExists, path)
	} else if !os.IsNotExist(err) {
		return path, &scaffolderr.FilesystemError{Op: "stat", Path: path, Err: err}
	}

	if m.dryRun {
		m.logger.Debug("dry run, not writing", "path", path)
		return path, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return path, &scaffolderr.FilesystemError{Op: "mkdir", Path: filepath.Dir(path), Err: err}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return path, errors.Wrap(scaffolderr.ErrAlreadyExists, path)
		}
		return path, &scaffolderr.FilesystemError{Op: "create", Path: path, Err: err}
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return path, &scaffolderr.FilesystemError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return path, &scaffolderr.FilesystemError{Op: "close", Path: path, Err: err}
	}

	m.logger.Debug("wrote file", "path", path, "bytes", len(content))
	return path, nil
}

// Patch applies spec to the file at path.
func (m *Materializer) Patch(ctx context.Context, path string, spec patch.Spec) (secondary.PatchOutcome, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		m.logger.Debug("file to patch not found, skipping", "path", path)
		return secondary.PatchSkipped, nil
	}
	if err != nil {
		return "", &scaffolderr.FilesystemError{Op: "stat", Path: path, Err: err}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", &scaffolderr.FilesystemError{Op: "read", Path: path, Err: err}
	}

	updated, outcome := patch.Apply(string(content), spec)
	switch outcome {
	case patch.Unchanged:
		m.logger.Info("patch already applied", "path", path)
		return secondary.PatchUnchanged, nil
	case patch.AnchorMissing:
		m.logger.Debug("patch anchor not found, skipping", "path", path, "anchor", spec.Anchor)
		return secondary.PatchSkipped, nil
	}

	if m.dryRun {
		m.logger.Debug("dry run, not patching", "path", path)
		return secondary.PatchApplied, nil
	}
	if err := os.WriteFile(path, []byte(updated), info.Mode().Perm()); err != nil {
		return "", &scaffolderr.FilesystemError{Op: "write", Path: path, Err: err}
	}
	return secondary.PatchApplied, nil
}

var _ secondary.SourceWriter = (*Materializer)(nil)
