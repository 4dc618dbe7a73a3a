package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/example/springscaffold/internal/core/namespace"
	"github.com/example/springscaffold/internal/core/rendercontext"
	"github.com/example/springscaffold/internal/models"
	"github.com/example/springscaffold/internal/ports/primary"
	"github.com/example/springscaffold/internal/scaffolderr"
	"github.com/example/springscaffold/internal/templates/scaffold"
)

// GenerateProject emits a project skeleton in <OutputDir>/<artifact id>. The base
// namespace is taken from the request, never detected.
func (s *ScaffoldServiceImpl) GenerateProject(ctx context.Context, req primary.GenerateProjectRequest) (*primary.GenerateResponse, error) {
	r, err := s.start(string(models.KindProjectSkeleton), req.OutputDir, req)
	if err != nil {
		return nil, err
	}

	database, ok := models.ParseDatabaseType(req.Database)
	if !ok {
		return nil, scaffolderr.Invalid("unsupported database %q", req.Database)
	}
	packaging, ok := models.ParsePackagingType(req.Packaging)
	if !ok {
		return nil, scaffolderr.Invalid("unsupported packaging %q", req.Packaging)
	}

	basePkg := firstNonEmpty(req.Package, DefaultProjectPackage)
	deps := req.Dependencies
	if len(deps) == 0 {
		deps = DefaultDependencies
	}
	r.resp.Namespace = basePkg

	data, err := rendercontext.Build(models.ArtifactSpec{
		PrimaryName: req.Name,
		Namespace:   basePkg,
		Kind:        models.KindProjectSkeleton,
		Options: models.Options{Project: models.ProjectOptions{
			ProjectName:       strings.TrimSpace(req.Name),
			GroupID:           strings.TrimSpace(req.GroupID),
			Description:       req.Description,
			SpringBootVersion: firstNonEmpty(req.SpringBootVersion, s.defaults.SpringBootVersion, DefaultSpringBootVersion),
			JavaVersion:       firstNonEmpty(req.JavaVersion, s.defaults.JavaVersion, DefaultJavaVersion),
			Dependencies:      deps,
			Database:          database,
			Packaging:         packaging,
			Docker:            req.Docker,
			Gitignore:         req.Gitignore,
			Readme:            req.Readme,
		}},
	})
	if err != nil {
		return nil, err
	}

	artifactID := data["artifactId"].(string)
	if artifactID == "" {
		return nil, scaffolderr.Invalid("project name %q has no usable characters", req.Name)
	}
	projectDir := filepath.Join(r.root, artifactID)
	mainClass := data["mainClassName"].(string)
	r.logger.Debug("project layout", "dir", projectDir, "main", mainClass, "database", database)

	if err := r.emitFile(ctx, projectDir, BuildDescriptor, scaffold.ProjectPom, data); err != nil {
		return nil, err
	}
	if err := r.emit(ctx, projectDir, basePkg, mainClass, scaffold.ProjectMain, data); err != nil {
		return nil, err
	}

	files := []struct {
		relPath  string
		template string
		include  bool
	}{
		{"src/main/resources/application.properties", scaffold.ProjectProperties, true},
		{fmt.Sprintf("src/test/java/%s/%sTests.java", namespace.ToPath(basePkg), mainClass), scaffold.ProjectTest, true},
		{"Dockerfile", scaffold.ProjectDockerfile, req.Docker},
		{".gitignore", scaffold.ProjectGitignore, req.Gitignore},
		{"README.md", scaffold.ProjectReadme, req.Readme},
	}

	for _, f := range files {
		if !f.include {
			continue
		}
		if err := r.emitFile(ctx, projectDir, f.relPath, f.template, data); err != nil {
			return nil, err
		}
	}

	return r.finish(ctx), nil
}
