package scaffold

import (
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames_CoverDeclaredTemplates(t *testing.T) {
	declared := []string{
		Model, Controller, Service, ServiceInterface, Repository,
		SecurityConfig, JwtUtils, JwtAuthenticationEntryPoint, JwtAuthenticationFilter,
		UserDetailsServiceImpl, UserPrincipal, AuthController, JwtRequest, JwtResponse,
		PomSecurityStarter, PomJwt, RepositoryMethods,
		ProjectPom, ProjectMain, ProjectProperties, ProjectTest, ProjectDockerfile,
		ProjectGitignore, ProjectReadme,
	}

	assert.ElementsMatch(t, declared, Names())
}

func TestTemplates_Parse(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			content, err := GetTemplate(name)
			require.NoError(t, err)
			require.NotEmpty(t, content)

			_, err = template.New(name).Funcs(TemplateFuncs()).Parse(content)
			assert.NoError(t, err)
		})
	}
}

func TestGetTemplate_Unknown(t *testing.T) {
	_, err := GetTemplate("java/nope.java")
	assert.Error(t, err)
}
