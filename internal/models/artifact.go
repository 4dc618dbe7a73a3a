package models

import "strings"

// ArtifactKind identifies what a pipeline run generates.
type ArtifactKind string

const (
	KindModel           ArtifactKind = "model"
	KindController      ArtifactKind = "controller"
	KindService         ArtifactKind = "service"
	KindRepository      ArtifactKind = "repository"
	KindSecurityBundle  ArtifactKind = "security"
	KindProjectSkeleton ArtifactKind = "project"
)

// RepositoryType selects the Spring Data base interface.
type RepositoryType string

const (
	RepositoryJPA           RepositoryType = "JPA"
	RepositoryMongoDB       RepositoryType = "MONGODB"
	RepositoryReactiveMongo RepositoryType = "REACTIVE_MONGO"
	RepositoryReactiveR2DBC RepositoryType = "REACTIVE_R2DBC"
)

// ParseRepositoryType parses s case-insensitively. Unknown values yield RepositoryJPA.
func ParseRepositoryType(s string) RepositoryType {
	switch RepositoryType(strings.ToUpper(strings.TrimSpace(s))) {
	case RepositoryMongoDB:
		return RepositoryMongoDB
	case RepositoryReactiveMongo:
		return RepositoryReactiveMongo
	case RepositoryReactiveR2DBC:
		return RepositoryReactiveR2DBC
	default:
		return RepositoryJPA
	}
}

// IsReactive reports whether the repository returns reactive types.
func (t RepositoryType) IsReactive() bool {
	return t == RepositoryReactiveMongo || t == RepositoryReactiveR2DBC
}

// IsMongo reports whether the repository targets MongoDB.
func (t RepositoryType) IsMongo() bool {
	return t == RepositoryMongoDB || t == RepositoryReactiveMongo
}

// DatabaseType selects datasource settings for a generated project.
type DatabaseType string

const (
	DatabaseH2         DatabaseType = "H2"
	DatabaseMySQL      DatabaseType = "MYSQL"
	DatabasePostgreSQL DatabaseType = "POSTGRESQL"
	DatabaseMongoDB    DatabaseType = "MONGODB"
	DatabaseSQLServer  DatabaseType = "SQLSERVER"
)

// ParseDatabaseType parses s case-insensitively. ok is false for unknown values.
func ParseDatabaseType(s string) (DatabaseType, bool) {
	switch d := DatabaseType(strings.ToUpper(strings.TrimSpace(s))); d {
	case DatabaseH2, DatabaseMySQL, DatabasePostgreSQL, DatabaseMongoDB, DatabaseSQLServer:
		return d, true
	case "":
		return DatabaseH2, true
	default:
		return "", false
	}
}

// PackagingType is the Maven packaging of a generated project.
type PackagingType string

const (
	PackagingJAR PackagingType = "JAR"
	PackagingWAR PackagingType = "WAR"
)

// ParsePackagingType parses s case-insensitively. ok is false for unknown values.
func ParsePackagingType(s string) (PackagingType, bool) {
	switch p := PackagingType(strings.ToUpper(strings.TrimSpace(s))); p {
	case PackagingJAR, PackagingWAR:
		return p, true
	case "":
		return PackagingJAR, true
	default:
		return "", false
	}
}

// ArtifactSpec is the fully resolved input for one generated artifact. It is built once per
// command and consumed by the context builder.
type ArtifactSpec struct {
	PrimaryName string
	Namespace   string
	Kind        ArtifactKind
	Fields      []FieldDescriptor
	Options     Options
}

// Options carries the kind-specific flags. Only the block matching Kind is read.
type Options struct {
	Model      ModelOptions
	Controller ControllerOptions
	Service    ServiceOptions
	Repository RepositoryOptions
	Security   SecurityOptions
	Project    ProjectOptions
}

// ModelOptions configures a data class.
type ModelOptions struct {
	TableName  string
	JPA        bool
	Lombok     bool
	Validation bool
}

// ControllerOptions configures a REST controller.
type ControllerOptions struct {
	ModelName      string
	ModelPackage   string
	ServicePackage string
	BasePath       string
	CRUD           bool
	Swagger        bool
	Validation     bool
}

// ServiceOptions configures a service (interface + implementation or single class).
type ServiceOptions struct {
	ModelName         string
	ModelPackage      string
	RepositoryPackage string
	Interface         bool
	CRUD              bool
	Transactional     bool
	Validation        bool
}

// RepositoryOptions configures a Spring Data repository.
type RepositoryOptions struct {
	ModelName     string
	ModelPackage  string
	Type          RepositoryType
	IDType        string
	CustomQueries bool
	Pagination    bool
}

// SecurityOptions configures the JWT security bundle.
type SecurityOptions struct {
	JWTSecret         string
	JWTExpirationMs   int64
	UserEntity        string
	UserPackage       string
	ControllerPackage string
	RepositoryPackage string
	CORS              bool
}

// ProjectOptions configures a project skeleton.
type ProjectOptions struct {
	ProjectName       string
	ArtifactID        string
	GroupID           string
	Description       string
	SpringBootVersion string
	JavaVersion       string
	Dependencies      []string
	Database          DatabaseType
	Packaging         PackagingType
	Docker            bool
	Gitignore         bool
	Readme            bool
}
