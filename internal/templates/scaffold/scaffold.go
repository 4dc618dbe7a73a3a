// Package scaffold provides the embedded templates for generated Spring Boot sources.
package scaffold

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
	"text/template"

	"github.com/example/springscaffold/internal/core/naming"
)

// Extension is appended to a template name to find its file.
const Extension = ".tmpl"

//go:embed java/*.tmpl security/*.tmpl project/*.tmpl
var scaffoldTemplates embed.FS

// Template names, relative to the template root and without Extension.
const (
	Model            = "java/model.java"
	Controller       = "java/controller.java"
	Service          = "java/service.java"
	ServiceInterface = "java/service-interface.java"
	Repository       = "java/repository.java"

	SecurityConfig              = "security/security-config.java"
	JwtUtils                    = "security/jwt-utils.java"
	JwtAuthenticationEntryPoint = "security/jwt-authentication-entry-point.java"
	JwtAuthenticationFilter     = "security/jwt-authentication-filter.java"
	UserDetailsServiceImpl      = "security/user-details-service-impl.java"
	UserPrincipal               = "security/user-principal.java"
	AuthController              = "security/auth-controller.java"
	JwtRequest                  = "security/jwt-request.java"
	JwtResponse                 = "security/jwt-response.java"
	PomSecurityStarter          = "security/pom-security-starter.xml"
	PomJwt                      = "security/pom-jwt.xml"
	RepositoryMethods           = "security/repository-methods.java"

	ProjectPom        = "project/pom.xml"
	ProjectMain       = "project/main.java"
	ProjectProperties = "project/application.properties"
	ProjectTest       = "project/test.java"
	ProjectDockerfile = "project/Dockerfile"
	ProjectGitignore  = "project/gitignore"
	ProjectReadme     = "project/README.md"
)

// FS returns the embedded template tree.
func FS() fs.FS {
	return scaffoldTemplates
}

// GetTemplate returns the content of the named embedded template.
func GetTemplate(name string) (string, error) {
	content, err := scaffoldTemplates.ReadFile(name + Extension)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// Names lists every embedded template name, sorted.
func Names() []string {
	var names []string
	_ = fs.WalkDir(scaffoldTemplates, ".", func(path string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() && strings.HasSuffix(path, Extension) {
			names = append(names, strings.TrimSuffix(path, Extension))
		}
		return nil
	})
	sort.Strings(names)
	return names
}

// TemplateFuncs returns the template function map for scaffold templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"toLower":    strings.ToLower,
		"toUpper":    strings.ToUpper,
		"title":      naming.Capitalize,
		"lowerFirst": naming.InstanceName,
		"join":       strings.Join,
	}
}
