package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/springscaffold/internal/ports/primary"
)

// ScaffoldAdapter is a thin adapter that translates CLI operations to ScaffoldService and
// HistoryService calls and prints one status line per artifact.
type ScaffoldAdapter struct {
	service primary.ScaffoldService
	history primary.HistoryService
	out     io.Writer
}

// NewScaffoldAdapter creates a new ScaffoldAdapter. history may be nil when the journal
// is not used.
func NewScaffoldAdapter(service primary.ScaffoldService, history primary.HistoryService, out io.Writer) *ScaffoldAdapter {
	return &ScaffoldAdapter{
		service: service,
		history: history,
		out:     out,
	}
}

// Model generates a data class.
func (a *ScaffoldAdapter) Model(ctx context.Context, req primary.GenerateModelRequest) (*primary.GenerateResponse, error) {
	return a.report(a.service.GenerateModel(ctx, req))
}

// Controller generates a REST controller.
func (a *ScaffoldAdapter) Controller(ctx context.Context, req primary.GenerateControllerRequest) (*primary.GenerateResponse, error) {
	return a.report(a.service.GenerateController(ctx, req))
}

// Service generates a service.
func (a *ScaffoldAdapter) Service(ctx context.Context, req primary.GenerateServiceRequest) (*primary.GenerateResponse, error) {
	return a.report(a.service.GenerateService(ctx, req))
}

// Repository generates a repository.
func (a *ScaffoldAdapter) Repository(ctx context.Context, req primary.GenerateRepositoryRequest) (*primary.GenerateResponse, error) {
	return a.report(a.service.GenerateRepository(ctx, req))
}

// Security generates the JWT security bundle.
func (a *ScaffoldAdapter) Security(ctx context.Context, req primary.GenerateSecurityRequest) (*primary.GenerateResponse, error) {
	return a.report(a.service.GenerateSecurity(ctx, req))
}

// Project generates a project skeleton and prints the next steps.
func (a *ScaffoldAdapter) Project(ctx context.Context, req primary.GenerateProjectRequest) (*primary.GenerateResponse, error) {
	resp, err := a.report(a.service.GenerateProject(ctx, req))
	if err != nil {
		return nil, err
	}
	if len(resp.Artifacts) > 0 {
		dir := filepath.Dir(resp.Artifacts[0].Path)
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Next steps:")
		fmt.Fprintf(a.out, "  cd %s\n", dir)
		fmt.Fprintln(a.out, "  mvn spring-boot:run")
	}
	return resp, nil
}

// History lists the latest journal entries. A nil history service means no journal was
// ever written for the output directory.
func (a *ScaffoldAdapter) History(ctx context.Context, limit int) ([]*primary.HistoryEntry, error) {
	var entries []*primary.HistoryEntry
	if a.history != nil {
		var err error
		entries, err = a.history.ListHistory(ctx, limit)
		if err != nil {
			return nil, err
		}
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No journal entries found.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Enable the journal for a generator run:")
		fmt.Fprintln(a.out, "  spring-scaffold model User --fields username:String --journal")
		return entries, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "WHEN\tRUN\tCOMMAND\tARTIFACT\tOUTCOME\tPATH")
	fmt.Fprintln(w, "----\t---\t-------\t--------\t-------\t----")

	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			shortRunID(e.RunID),
			e.Command,
			e.Artifact,
			e.Outcome,
			e.Path,
		)
	}

	w.Flush()
	return entries, nil
}

func (a *ScaffoldAdapter) report(resp *primary.GenerateResponse, err error) (*primary.GenerateResponse, error) {
	if err != nil {
		return nil, err
	}

	for _, w := range resp.Warnings {
		fmt.Fprintf(a.out, "%s %s\n", color.New(color.FgYellow).Sprint("⚠"), w)
	}
	for _, art := range resp.Artifacts {
		fmt.Fprintf(a.out, "%s %s\n", Marker(art.Outcome), art.Path)
	}
	return resp, nil
}

// Marker returns the fixed-width, colored status word for an outcome.
func Marker(outcome primary.ArtifactOutcome) string {
	switch outcome {
	case primary.OutcomeCreated:
		return color.New(color.FgGreen).Sprint("CREATED  ")
	case primary.OutcomeExists:
		return color.New(color.FgBlue).Sprint("EXISTS   ")
	case primary.OutcomePatched:
		return color.New(color.FgGreen).Sprint("PATCHED  ")
	case primary.OutcomeUnchanged:
		return color.New(color.FgBlue).Sprint("UNCHANGED")
	case primary.OutcomePlanned:
		return color.New(color.FgCyan).Sprint("DRY-RUN  ")
	default:
		return color.New(color.FgYellow).Sprint("SKIPPED  ")
	}
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
