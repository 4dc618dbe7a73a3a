package rendercontext

import (
	"strings"

	"github.com/example/springscaffold/internal/core/naming"
	"github.com/example/springscaffold/internal/models"
)

// Dependency is one Maven dependency of a generated project.
type Dependency struct {
	GroupID    string
	ArtifactID string
	Scope      string
	Optional   bool
}

const bootGroup = "org.springframework.boot"

var starterDependencies = map[string]Dependency{
	"web":        {GroupID: bootGroup, ArtifactID: "spring-boot-starter-web"},
	"webflux":    {GroupID: bootGroup, ArtifactID: "spring-boot-starter-webflux"},
	"jpa":        {GroupID: bootGroup, ArtifactID: "spring-boot-starter-data-jpa"},
	"mongodb":    {GroupID: bootGroup, ArtifactID: "spring-boot-starter-data-mongodb"},
	"r2dbc":      {GroupID: bootGroup, ArtifactID: "spring-boot-starter-data-r2dbc"},
	"security":   {GroupID: bootGroup, ArtifactID: "spring-boot-starter-security"},
	"validation": {GroupID: bootGroup, ArtifactID: "spring-boot-starter-validation"},
	"actuator":   {GroupID: bootGroup, ArtifactID: "spring-boot-starter-actuator"},
	"devtools":   {GroupID: bootGroup, ArtifactID: "spring-boot-devtools", Scope: "runtime", Optional: true},
	"lombok":     {GroupID: "org.projectlombok", ArtifactID: "lombok", Optional: true},
	"test":       {GroupID: bootGroup, ArtifactID: "spring-boot-starter-test", Scope: "test"},
}

// DependencyFor maps a short dependency name to its Maven coordinates. Unknown names are
// taken to be Spring Boot starters.
func DependencyFor(name string) Dependency {
	key := strings.ToLower(strings.TrimSpace(name))
	if d, ok := starterDependencies[key]; ok {
		return d
	}
	return Dependency{GroupID: bootGroup, ArtifactID: "spring-boot-starter-" + key}
}

// DatabaseSettings are the datasource properties of a generated project.
type DatabaseSettings struct {
	Driver           string
	URL              string
	Username         string
	Password         string
	Dialect          string
	MongoURI         string
	DriverDependency Dependency
}

// DatabaseConfig returns the datasource settings and driver dependency for db.
func DatabaseConfig(db models.DatabaseType) DatabaseSettings {
	switch db {
	case models.DatabaseMySQL:
		return DatabaseSettings{
			Driver:           "com.mysql.cj.jdbc.Driver",
			URL:              "jdbc:mysql://localhost:3306/database",
			Username:         "root",
			Password:         "password",
			Dialect:          "org.hibernate.dialect.MySQL8Dialect",
			DriverDependency: Dependency{GroupID: "com.mysql", ArtifactID: "mysql-connector-j", Scope: "runtime"},
		}
	case models.DatabasePostgreSQL:
		return DatabaseSettings{
			Driver:           "org.postgresql.Driver",
			URL:              "jdbc:postgresql://localhost:5432/database",
			Username:         "postgres",
			Password:         "password",
			Dialect:          "org.hibernate.dialect.PostgreSQLDialect",
			DriverDependency: Dependency{GroupID: "org.postgresql", ArtifactID: "postgresql", Scope: "runtime"},
		}
	case models.DatabaseSQLServer:
		return DatabaseSettings{
			Driver:           "com.microsoft.sqlserver.jdbc.SQLServerDriver",
			URL:              "jdbc:sqlserver://localhost:1433;databaseName=database;encrypt=false",
			Username:         "sa",
			Password:         "password",
			Dialect:          "org.hibernate.dialect.SQLServerDialect",
			DriverDependency: Dependency{GroupID: "com.microsoft.sqlserver", ArtifactID: "mssql-jdbc", Scope: "runtime"},
		}
	case models.DatabaseMongoDB:
		return DatabaseSettings{
			MongoURI: "mongodb://localhost:27017/database",
		}
	default:
		return DatabaseSettings{
			Driver:           "org.h2.Driver",
			URL:              "jdbc:h2:mem:testdb",
			Username:         "sa",
			Password:         "",
			Dialect:          "org.hibernate.dialect.H2Dialect",
			DriverDependency: Dependency{GroupID: "com.h2database", ArtifactID: "h2", Scope: "runtime"},
		}
	}
}

func buildProject(ctx Context, projectName, basePackage string, opts models.ProjectOptions) {
	artifactID := opts.ArtifactID
	if artifactID == "" {
		artifactID = naming.ToKebabCase(projectName)
	}
	groupID := opts.GroupID
	if groupID == "" {
		groupID = basePackage
	}
	database := opts.Database
	if database == "" {
		database = models.DatabaseH2
	}
	packaging := opts.Packaging
	if packaging == "" {
		packaging = models.PackagingJAR
	}

	db := DatabaseConfig(database)
	deps := projectDependencies(opts.Dependencies, database, db)

	ctx["projectName"] = projectName
	ctx["description"] = opts.Description
	ctx["basePackage"] = basePackage
	ctx["groupId"] = groupID
	ctx["artifactId"] = artifactID
	ctx["mainClassName"] = naming.ToPascalCase(projectName) + "Application"
	ctx["springBootVersion"] = opts.SpringBootVersion
	ctx["javaVersion"] = opts.JavaVersion
	ctx["dependencies"] = deps
	ctx["dependencyNames"] = normalizedNames(opts.Dependencies)
	ctx["database"] = string(database)
	ctx["packaging"] = strings.ToLower(string(packaging))
	ctx["isWar"] = packaging == models.PackagingWAR
	ctx["isMongo"] = database == models.DatabaseMongoDB
	ctx["includeDocker"] = opts.Docker
	ctx["includeGitignore"] = opts.Gitignore
	ctx["includeReadme"] = opts.Readme
	ctx["databaseDriver"] = db.Driver
	ctx["databaseUrl"] = db.URL
	ctx["databaseUsername"] = db.Username
	ctx["databasePassword"] = db.Password
	ctx["hibernateDialect"] = db.Dialect
	ctx["mongoUri"] = db.MongoURI
	ctx["usesJpa"] = hasDependency(deps, "spring-boot-starter-data-jpa")
}

// projectDependencies resolves names into coordinates in input order, adds the database
// driver (or the MongoDB starter) and drops duplicates.
func projectDependencies(names []string, database models.DatabaseType, db DatabaseSettings) []Dependency {
	var deps []Dependency
	seen := make(map[string]bool)
	add := func(d Dependency) {
		key := d.GroupID + ":" + d.ArtifactID
		if seen[key] {
			return
		}
		seen[key] = true
		deps = append(deps, d)
	}

	for _, n := range normalizedNames(names) {
		add(DependencyFor(n))
	}
	if database == models.DatabaseMongoDB {
		add(starterDependencies["mongodb"])
	} else if db.DriverDependency.ArtifactID != "" {
		add(db.DriverDependency)
	}
	if deps == nil {
		deps = []Dependency{}
	}
	return deps
}

func normalizedNames(names []string) []string {
	out := []string{}
	for _, n := range names {
		if n = strings.ToLower(strings.TrimSpace(n)); n != "" {
			out = append(out, n)
		}
	}
	return out
}

func hasDependency(deps []Dependency, artifactID string) bool {
	for _, d := range deps {
		if d.ArtifactID == artifactID {
			return true
		}
	}
	return false
}
