package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/springscaffold/internal/core/namespace"
	"github.com/example/springscaffold/internal/core/patch"
	"github.com/example/springscaffold/internal/logx"
	"github.com/example/springscaffold/internal/ports/secondary"
	"github.com/example/springscaffold/internal/scaffolderr"
)

// Ensure mocks implement the interfaces
var (
	_ secondary.NamespaceDetector = (*mockDetector)(nil)
	_ secondary.TemplateRenderer  = (*mockRenderer)(nil)
	_ secondary.SourceWriter      = (*mockWriter)(nil)
	_ secondary.JournalRepository = (*mockJournal)(nil)
)

// mockDetector returns a fixed base and counts calls.
type mockDetector struct {
	base  string
	calls int
	roots []string
}

func (m *mockDetector) Detect(projectRoot string) string {
	m.calls++
	m.roots = append(m.roots, projectRoot)
	return m.base
}

// mockRenderer returns "// <template>\n" unless content overrides it, and records the
// data it was called with.
type mockRenderer struct {
	content map[string]string
	errs    map[string]error
	calls   []string
	data    map[string]map[string]any
}

func newMockRenderer() *mockRenderer {
	return &mockRenderer{
		content: make(map[string]string),
		errs:    make(map[string]error),
		data:    make(map[string]map[string]any),
	}
}

func (m *mockRenderer) Render(name string, data map[string]any) (string, error) {
	m.calls = append(m.calls, name)
	m.data[name] = data
	if err := m.errs[name]; err != nil {
		return "", &scaffolderr.TemplateError{Template: name, Err: err}
	}
	if c, ok := m.content[name]; ok {
		return c, nil
	}
	return "// " + name + "\n", nil
}

// mockWriter is an in-memory SourceWriter. Patches use the real splice.
type mockWriter struct {
	files    map[string]string
	dryRun   bool
	writeErr error
}

func newMockWriter() *mockWriter {
	return &mockWriter{files: make(map[string]string)}
}

func (m *mockWriter) DryRun() bool {
	return m.dryRun
}

func (m *mockWriter) SourcePath(root, ns, baseName string) string {
	return filepath.Join(root, "src", "main", "java", filepath.FromSlash(namespace.ToPath(ns)), baseName+".java")
}

func (m *mockWriter) Write(ctx context.Context, root, ns, baseName, content string) (string, error) {
	return m.create(m.SourcePath(root, ns, baseName), content)
}

func (m *mockWriter) WriteFile(ctx context.Context, root, relPath, content string) (string, error) {
	return m.create(filepath.Join(root, filepath.FromSlash(relPath)), content)
}

func (m *mockWriter) create(path, content string) (string, error) {
	if m.writeErr != nil {
		return path, &scaffolderr.FilesystemError{Op: "write", Path: path, Err: m.writeErr}
	}
	if _, ok := m.files[path]; ok {
		return path, scaffolderr.ErrAlreadyExists
	}
	if !m.dryRun {
		m.files[path] = content
	}
	return path, nil
}

func (m *mockWriter) Patch(ctx context.Context, path string, spec patch.Spec) (secondary.PatchOutcome, error) {
	content, ok := m.files[path]
	if !ok {
		return secondary.PatchSkipped, nil
	}
	updated, outcome := patch.Apply(content, spec)
	switch outcome {
	case patch.Unchanged:
		return secondary.PatchUnchanged, nil
	case patch.AnchorMissing:
		return secondary.PatchSkipped, nil
	}
	if !m.dryRun {
		m.files[path] = updated
	}
	return secondary.PatchApplied, nil
}

// paths returns the written paths that start with prefix, relative to it.
func (m *mockWriter) paths(prefix string) []string {
	var out []string
	for p := range m.files {
		if rel, ok := strings.CutPrefix(p, prefix); ok {
			out = append(out, filepath.ToSlash(strings.TrimPrefix(rel, string(os.PathSeparator))))
		}
	}
	return out
}

// mockJournal keeps records in memory.
type mockJournal struct {
	records   []*secondary.JournalRecord
	recordErr error
	listErr   error
	lastLimit int
}

func (m *mockJournal) Record(ctx context.Context, entry *secondary.JournalRecord) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	entry.ID = int64(len(m.records) + 1)
	m.records = append(m.records, entry)
	return nil
}

func (m *mockJournal) List(ctx context.Context, limit int) ([]*secondary.JournalRecord, error) {
	m.lastLimit = limit
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]*secondary.JournalRecord, 0, len(m.records))
	for i := len(m.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.records[i])
	}
	return out, nil
}

var errDisk = errors.New("disk full")

// testFixture bundles a service with its mocks.
type testFixture struct {
	svc      *ScaffoldServiceImpl
	detector *mockDetector
	renderer *mockRenderer
	writer   *mockWriter
	journal  *mockJournal
}

func newTestFixture() *testFixture {
	f := &testFixture{
		detector: &mockDetector{base: "com.acme"},
		renderer: newMockRenderer(),
		writer:   newMockWriter(),
		journal:  &mockJournal{},
	}
	f.svc = NewScaffoldService(f.detector, f.renderer, f.writer, f.journal, Defaults{}, logx.Discard())
	return f
}
