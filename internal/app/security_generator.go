package app

import (
	"context"
	"path/filepath"

	"github.com/example/springscaffold/internal/core/namespace"
	"github.com/example/springscaffold/internal/core/patch"
	"github.com/example/springscaffold/internal/core/rendercontext"
	"github.com/example/springscaffold/internal/models"
	"github.com/example/springscaffold/internal/ports/primary"
	"github.com/example/springscaffold/internal/templates/scaffold"
)

// BuildDescriptor is the Maven descriptor patched by the security bundle.
const BuildDescriptor = "pom.xml"

const securityBundle = "SecurityBundle"

// securityClasses are emitted into the security package in this order.
var securityClasses = []struct {
	name     string
	template string
}{
	{"SecurityConfig", scaffold.SecurityConfig},
	{"JwtUtils", scaffold.JwtUtils},
	{"JwtAuthenticationEntryPoint", scaffold.JwtAuthenticationEntryPoint},
	{"JwtAuthenticationFilter", scaffold.JwtAuthenticationFilter},
	{"UserDetailsServiceImpl", scaffold.UserDetailsServiceImpl},
	{"UserPrincipal", scaffold.UserPrincipal},
	{"JwtRequest", scaffold.JwtRequest},
	{"JwtResponse", scaffold.JwtResponse},
}

// GenerateSecurity emits the JWT security bundle, then patches the build descriptor and
// the user repository. Patches are guarded and safe to repeat.
func (s *ScaffoldServiceImpl) GenerateSecurity(ctx context.Context, req primary.GenerateSecurityRequest) (*primary.GenerateResponse, error) {
	r, err := s.start(string(models.KindSecurityBundle), req.OutputDir, req)
	if err != nil {
		return nil, err
	}

	ns := r.resolver.Resolve(req.Package, namespace.SubSecurity)
	userPkg := r.resolver.Resolve(req.UserPackage, namespace.SubModel)
	repoPkg := namespace.ReplaceLastSegment(userPkg, namespace.SubModel, namespace.SubRepository)
	controllerPkg := namespace.Sibling(ns, namespace.SubController)
	r.resp.Namespace = ns
	r.logger.Debug("resolved namespaces", "package", ns, "user", userPkg, "repository", repoPkg, "controller", controllerPkg)

	data, err := rendercontext.Build(models.ArtifactSpec{
		PrimaryName: securityBundle,
		Namespace:   ns,
		Kind:        models.KindSecurityBundle,
		Options: models.Options{Security: models.SecurityOptions{
			JWTSecret:         firstNonEmpty(req.JWTSecret, s.defaults.JWTSecret, DefaultJWTSecret),
			JWTExpirationMs:   req.JWTExpirationMs,
			UserEntity:        req.UserEntity,
			UserPackage:       userPkg,
			ControllerPackage: controllerPkg,
			RepositoryPackage: repoPkg,
			CORS:              req.CORS,
		}},
	})
	if err != nil {
		return nil, err
	}

	for _, c := range securityClasses {
		if err := r.emit(ctx, r.root, ns, c.name, c.template, data); err != nil {
			return nil, err
		}
	}
	if err := r.emit(ctx, r.root, controllerPkg, "AuthController", scaffold.AuthController, data); err != nil {
		return nil, err
	}

	pom := filepath.Join(r.root, BuildDescriptor)
	pomPatches := []struct {
		template string
		guard    string
	}{
		{scaffold.PomSecurityStarter, "spring-boot-starter-security"},
		{scaffold.PomJwt, "jjwt"},
	}
	for _, p := range pomPatches {
		spec := patch.Spec{Anchor: "</dependencies>", First: true, Guards: []string{p.guard}}
		if err := r.patch(ctx, BuildDescriptor, pom, p.template, data, spec); err != nil {
			return nil, err
		}
	}

	userRepo := data["userRepositoryName"].(string)
	spec := patch.Spec{
		Anchor:  "}",
		Guards:  []string{"findByUsername", "existsByUsername"},
		Imports: []string{"import java.util.Optional;"},
	}
	if err := r.patch(ctx, userRepo, s.writer.SourcePath(r.root, repoPkg, userRepo), scaffold.RepositoryMethods, data, spec); err != nil {
		return nil, err
	}

	return r.finish(ctx), nil
}
