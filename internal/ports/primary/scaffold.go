// Package primary defines the driving ports exposed to the CLI.
package primary

import (
	"context"
	"time"
)

// ScaffoldService defines the primary port for source generation. Each call is one
// pipeline run: the base namespace is detected at most once and every artifact the run
// produces is reported in the response.
type ScaffoldService interface {
	// GenerateModel emits a data class.
	GenerateModel(ctx context.Context, req GenerateModelRequest) (*GenerateResponse, error)

	// GenerateController emits a REST controller.
	GenerateController(ctx context.Context, req GenerateControllerRequest) (*GenerateResponse, error)

	// GenerateService emits a service interface and implementation, or a single class.
	GenerateService(ctx context.Context, req GenerateServiceRequest) (*GenerateResponse, error)

	// GenerateRepository emits a Spring Data repository interface.
	GenerateRepository(ctx context.Context, req GenerateRepositoryRequest) (*GenerateResponse, error)

	// GenerateSecurity emits the JWT security bundle and patches pom.xml and the user repository.
	GenerateSecurity(ctx context.Context, req GenerateSecurityRequest) (*GenerateResponse, error)

	// GenerateProject emits a new project skeleton under OutputDir.
	GenerateProject(ctx context.Context, req GenerateProjectRequest) (*GenerateResponse, error)
}

// HistoryService defines the primary port for reading the generation journal.
type HistoryService interface {
	// ListHistory returns the latest journal entries, newest first.
	ListHistory(ctx context.Context, limit int) ([]*HistoryEntry, error)
}

// GenerateModelRequest contains parameters for generating a data class.
type GenerateModelRequest struct {
	OutputDir  string `validate:"required"`
	Name       string `validate:"required"`
	Package    string
	Fields     []string // positional field tokens
	FieldsFlag string   // comma-separated field tokens
	TableName  string
	JPA        bool
	Lombok     bool
	Validation bool
}

// GenerateControllerRequest contains parameters for generating a controller.
type GenerateControllerRequest struct {
	OutputDir      string `validate:"required"`
	Name           string `validate:"required"`
	Package        string
	Model          string
	ModelPackage   string
	ServicePackage string
	BasePath       string `validate:"omitempty,startswith=/"`
	CRUD           bool
	Swagger        bool
	Validation     bool
}

// GenerateServiceRequest contains parameters for generating a service.
type GenerateServiceRequest struct {
	OutputDir         string `validate:"required"`
	Name              string `validate:"required"`
	Package           string
	Model             string
	ModelPackage      string
	RepositoryPackage string
	Interface         bool
	CRUD              bool
	Transactional     bool
	Validation        bool
}

// GenerateRepositoryRequest contains parameters for generating a repository.
type GenerateRepositoryRequest struct {
	OutputDir     string `validate:"required"`
	Name          string `validate:"required"`
	Package       string
	Model         string
	ModelPackage  string
	Type          string // JPA, MONGODB, REACTIVE_MONGO, REACTIVE_R2DBC
	IDType        string
	CustomQueries bool
	Pagination    bool
}

// GenerateSecurityRequest contains parameters for generating the security bundle.
type GenerateSecurityRequest struct {
	OutputDir       string `validate:"required"`
	Package         string
	JWTSecret       string
	JWTExpirationMs int64 `validate:"gte=0"`
	UserEntity      string
	UserPackage     string
	CORS            bool
}

// GenerateProjectRequest contains parameters for generating a project skeleton.
type GenerateProjectRequest struct {
	OutputDir         string `validate:"required"`
	Name              string `validate:"required"`
	Package           string
	GroupID           string
	Description       string
	SpringBootVersion string
	JavaVersion       string
	Dependencies      []string
	Database          string // H2, MYSQL, POSTGRESQL, MONGODB, SQLSERVER
	Packaging         string // JAR, WAR
	Docker            bool
	Gitignore         bool
	Readme            bool
}

// ArtifactOutcome classifies what happened to one artifact of a run.
type ArtifactOutcome string

const (
	OutcomeCreated   ArtifactOutcome = "created"
	OutcomeExists    ArtifactOutcome = "exists"
	OutcomePatched   ArtifactOutcome = "patched"
	OutcomeUnchanged ArtifactOutcome = "unchanged"
	OutcomeSkipped   ArtifactOutcome = "skipped"
	OutcomePlanned   ArtifactOutcome = "planned"
)

// GeneratedArtifact is one file written, found, patched or planned by a run.
type GeneratedArtifact struct {
	Name    string
	Path    string
	Outcome ArtifactOutcome
}

// GenerateResponse contains the result of a generation run.
type GenerateResponse struct {
	RunID     string
	Command   string
	Namespace string
	Artifacts []*GeneratedArtifact
	Warnings  []string
}

// HistoryEntry is a journal row as shown to the user.
type HistoryEntry struct {
	RunID     string
	Command   string
	Artifact  string
	Path      string
	Outcome   string
	CreatedAt time.Time
}
