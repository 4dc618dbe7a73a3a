package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/example/springscaffold/internal/core/namespace"
	"github.com/example/springscaffold/internal/core/patch"
	"github.com/example/springscaffold/internal/core/rendercontext"
	"github.com/example/springscaffold/internal/ports/primary"
	"github.com/example/springscaffold/internal/ports/secondary"
	"github.com/example/springscaffold/internal/scaffolderr"
)

// Defaults are the configurable fallbacks applied when a request leaves a value blank.
type Defaults struct {
	BasePath          string
	JavaVersion       string
	SpringBootVersion string
	JWTSecret         string
}

// Built-in fallbacks used when Defaults leaves a value blank.
const (
	DefaultJavaVersion       = "17"
	DefaultSpringBootVersion = "3.2.0"
	DefaultProjectPackage    = "com.example"
	DefaultJWTSecret         = "myJwtSecretKeyForDevelopmentOnly123456789"
)

// DefaultDependencies are the starters of a new project when none are requested.
var DefaultDependencies = []string{"web", "jpa", "test"}

// ScaffoldServiceImpl implements the ScaffoldService interface.
type ScaffoldServiceImpl struct {
	detector secondary.NamespaceDetector
	renderer secondary.TemplateRenderer
	writer   secondary.SourceWriter
	journal  secondary.JournalRepository // nil disables the journal
	defaults Defaults
	validate *validator.Validate
	logger   *slog.Logger
}

// NewScaffoldService creates a new ScaffoldService with injected dependencies.
func NewScaffoldService(
	detector secondary.NamespaceDetector,
	renderer secondary.TemplateRenderer,
	writer secondary.SourceWriter,
	journal secondary.JournalRepository,
	defaults Defaults,
	logger *slog.Logger,
) *ScaffoldServiceImpl {
	return &ScaffoldServiceImpl{
		detector: detector,
		renderer: renderer,
		writer:   writer,
		journal:  journal,
		defaults: defaults,
		validate: validator.New(),
		logger:   logger,
	}
}

// run carries the state of one pipeline invocation.
type run struct {
	svc      *ScaffoldServiceImpl
	root     string
	resolver *namespace.Resolver
	resp     *primary.GenerateResponse
	logger   *slog.Logger
}

// start validates req and opens a run rooted at outputDir. The detector is bound lazily
// and runs at most once for the whole run.
func (s *ScaffoldServiceImpl) start(command, outputDir string, req any) (*run, error) {
	if err := s.check(req); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	r := &run{
		svc:  s,
		root: outputDir,
		resp: &primary.GenerateResponse{RunID: runID, Command: command},
		logger: s.logger.With(
			"command", command,
			"run", runID,
		),
	}
	r.resolver = namespace.NewResolver(func() string {
		base := s.detector.Detect(outputDir)
		r.logger.Debug("detected base namespace", "base", base, "root", outputDir)
		return base
	})
	return r, nil
}

// check validates a request struct and maps failures to ErrInvalidInput.
func (s *ScaffoldServiceImpl) check(req any) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return scaffolderr.Invalid("%v", err)
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return scaffolderr.Invalid("%s is required", strings.ToLower(fe.Field()))
	default:
		return scaffolderr.Invalid("%s: invalid value %v (%s)", strings.ToLower(fe.Field()), fe.Value(), fe.Tag())
	}
}

func (r *run) warn(msg string) {
	r.logger.Debug("warning", "message", msg)
	r.resp.Warnings = append(r.resp.Warnings, msg)
}

func (r *run) add(name, path string, outcome primary.ArtifactOutcome) {
	r.resp.Artifacts = append(r.resp.Artifacts, &primary.GeneratedArtifact{Name: name, Path: path, Outcome: outcome})
}

// created maps a successful create to its outcome.
func (r *run) created() primary.ArtifactOutcome {
	if r.svc.writer.DryRun() {
		return primary.OutcomePlanned
	}
	return primary.OutcomeCreated
}

// render binds data to template, wrapping failures with the artifact name.
func (r *run) render(artifact, template string, data rendercontext.Context) (string, error) {
	content, err := r.svc.renderer.Render(template, data)
	if err != nil {
		return "", errors.Wrapf(err, "failed to render %s", artifact)
	}
	return content, nil
}

// emit renders template and writes it as ns.baseName under root. An existing file is
// reported, not failed.
func (r *run) emit(ctx context.Context, root, ns, baseName, template string, data rendercontext.Context) error {
	content, err := r.render(baseName, template, data)
	if err != nil {
		return err
	}

	path, err := r.svc.writer.Write(ctx, root, ns, baseName, content)
	return r.settle(baseName, path, err)
}

// emitFile renders template and writes it to root/relPath.
func (r *run) emitFile(ctx context.Context, root, relPath, template string, data rendercontext.Context) error {
	content, err := r.render(relPath, template, data)
	if err != nil {
		return err
	}

	path, err := r.svc.writer.WriteFile(ctx, root, relPath, content)
	return r.settle(relPath, path, err)
}

func (r *run) settle(name, path string, err error) error {
	if scaffolderr.IsAlreadyExists(err) {
		r.warn(fmt.Sprintf("%s already exists, skipping: %s", name, path))
		r.add(name, path, primary.OutcomeExists)
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "failed to write %s", name)
	}

	r.logger.Info("generated", "artifact", name, "path", path)
	r.add(name, path, r.created())
	return nil
}

// patch renders template as the snippet of spec and splices it into path.
func (r *run) patch(ctx context.Context, name, path, template string, data rendercontext.Context, spec patch.Spec) error {
	snippet, err := r.render(name, template, data)
	if err != nil {
		return err
	}
	spec.Snippet = snippet

	outcome, err := r.svc.writer.Patch(ctx, path, spec)
	if err != nil {
		return errors.Wrapf(err, "failed to patch %s", name)
	}

	switch outcome {
	case secondary.PatchApplied:
		r.logger.Info("patched", "artifact", name, "path", path)
		if r.svc.writer.DryRun() {
			r.add(name, path, primary.OutcomePlanned)
		} else {
			r.add(name, path, primary.OutcomePatched)
		}
	case secondary.PatchUnchanged:
		r.add(name, path, primary.OutcomeUnchanged)
	default:
		r.warn(fmt.Sprintf("%s not patched: %s", name, path))
		r.add(name, path, primary.OutcomeSkipped)
	}
	return nil
}

// finish records the run in the journal. Journal failures never fail the run.
func (r *run) finish(ctx context.Context) *primary.GenerateResponse {
	if r.svc.journal == nil {
		return r.resp
	}

	for _, a := range r.resp.Artifacts {
		entry := &secondary.JournalRecord{
			RunID:    r.resp.RunID,
			Command:  r.resp.Command,
			Artifact: a.Name,
			Path:     a.Path,
			Outcome:  string(a.Outcome),
		}
		if err := r.svc.journal.Record(ctx, entry); err != nil {
			r.logger.Warn("failed to record journal entry", "artifact", a.Name, "error", err)
			break
		}
	}
	return r.resp
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

var _ primary.ScaffoldService = (*ScaffoldServiceImpl)(nil)
