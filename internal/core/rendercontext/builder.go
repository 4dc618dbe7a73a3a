// Package rendercontext assembles the key/value maps consumed by the templates.
// This is part of the Functional Core - no I/O, only pure functions.
package rendercontext

import (
	"strings"

	"github.com/example/springscaffold/internal/core/fields"
	"github.com/example/springscaffold/internal/core/naming"
	"github.com/example/springscaffold/internal/models"
	"github.com/example/springscaffold/internal/scaffolderr"
)

// Context is the data bound to a template. It is built fresh for every artifact.
type Context map[string]any

// Defaults applied when an option is left blank.
const (
	DefaultIDType        = "Long"
	DefaultBasePath      = "/api/v1"
	DefaultJWTExpiration = int64(86400000)
	DefaultUserEntity    = "User"
	JJWTVersion          = "0.11.5"
)

// Suffixes stripped from an artifact name to infer the entity it serves.
const (
	SuffixController = "Controller"
	SuffixService    = "Service"
	SuffixRepository = "Repository"
)

// Build maps spec into the context for its kind. It fails only when the primary name is blank.
func Build(spec models.ArtifactSpec) (Context, error) {
	name := strings.TrimSpace(spec.PrimaryName)
	if name == "" {
		return nil, scaffolderr.Invalid("%s name is required", spec.Kind)
	}

	ctx := Context{"packageName": spec.Namespace}
	switch spec.Kind {
	case models.KindModel:
		buildModel(ctx, name, spec.Fields, spec.Options.Model)
	case models.KindController:
		buildController(ctx, name, spec.Options.Controller)
	case models.KindService:
		buildService(ctx, name, spec.Options.Service)
	case models.KindRepository:
		buildRepository(ctx, name, spec.Options.Repository)
	case models.KindSecurityBundle:
		buildSecurity(ctx, spec.Namespace, spec.Options.Security)
	case models.KindProjectSkeleton:
		buildProject(ctx, name, spec.Namespace, spec.Options.Project)
	default:
		return nil, scaffolderr.Invalid("unknown artifact kind %q", spec.Kind)
	}
	return ctx, nil
}

func buildModel(ctx Context, className string, fs []models.FieldDescriptor, opts models.ModelOptions) {
	tableName := strings.TrimSpace(opts.TableName)
	if tableName == "" {
		tableName = naming.TableName(className)
	}

	ctx["className"] = className
	ctx["instanceName"] = naming.InstanceName(className)
	ctx["tableName"] = tableName
	ctx["includeJpa"] = opts.JPA
	ctx["useLombok"] = opts.Lombok
	ctx["includeValidation"] = opts.Validation
	ctx["fields"] = fieldContexts(fs)
	ctx["imports"] = fields.CollectImports(fs, fields.ImportToggles{
		Persistence: opts.JPA,
		Validation:  opts.Validation,
		Lombok:      opts.Lombok,
	})
}

// fieldContexts returns one complete record per field. Every key is always present so
// templates can test them without tripping over missing map entries.
func fieldContexts(fs []models.FieldDescriptor) []map[string]any {
	out := make([]map[string]any, 0, len(fs))
	for _, f := range fs {
		validations := fields.ValidationAnnotations(f)
		if validations == nil {
			validations = []string{}
		}
		out = append(out, map[string]any{
			"name":                  f.Name,
			"type":                  f.Type,
			"capitalizedName":       naming.Capitalize(f.Name),
			"columnAnnotation":      fields.ColumnAnnotation(f),
			"validationAnnotations": validations,
			"comment":               f.Comment,
		})
	}
	return out
}

// modelFor returns the explicit model name, or infers it from the artifact name.
func modelFor(explicit, artifactName, suffix string) string {
	if m := strings.TrimSpace(explicit); m != "" {
		return m
	}
	return naming.InferAssociatedEntity(artifactName, suffix)
}

func buildController(ctx Context, controllerName string, opts models.ControllerOptions) {
	modelName := modelFor(opts.ModelName, controllerName, SuffixController)
	serviceName := modelName + SuffixService
	basePath := strings.TrimSpace(opts.BasePath)
	if basePath == "" {
		basePath = DefaultBasePath
	}

	ctx["controllerName"] = controllerName
	ctx["modelName"] = modelName
	ctx["modelPackage"] = opts.ModelPackage
	ctx["servicePackage"] = opts.ServicePackage
	ctx["basePath"] = strings.TrimSuffix(basePath, "/")
	ctx["includeCrud"] = opts.CRUD
	ctx["includeSwagger"] = opts.Swagger
	ctx["includeValidation"] = opts.Validation
	ctx["serviceName"] = serviceName
	ctx["serviceInstanceName"] = naming.InstanceName(serviceName)
	ctx["modelInstanceName"] = naming.InstanceName(modelName)
	ctx["resourcePath"] = naming.ResourcePath(modelName)
}

func buildService(ctx Context, serviceName string, opts models.ServiceOptions) {
	modelName := modelFor(opts.ModelName, serviceName, SuffixService)
	repositoryName := modelName + SuffixRepository
	iface, impl := naming.InterfaceImplPair(serviceName)

	ctx["serviceName"] = serviceName
	ctx["modelName"] = modelName
	ctx["modelPackage"] = opts.ModelPackage
	ctx["repositoryPackage"] = opts.RepositoryPackage
	ctx["generateInterface"] = opts.Interface
	ctx["includeCrud"] = opts.CRUD
	ctx["includeTransactional"] = opts.Transactional
	ctx["includeValidation"] = opts.Validation
	ctx["repositoryName"] = repositoryName
	ctx["repositoryInstanceName"] = naming.InstanceName(repositoryName)
	ctx["modelInstanceName"] = naming.InstanceName(modelName)
	ctx["interfaceName"] = iface
	ctx["implementationName"] = impl
}

// BaseType returns the Spring Data interface a repository of type t extends.
func BaseType(t models.RepositoryType) string {
	switch t {
	case models.RepositoryMongoDB:
		return "MongoRepository"
	case models.RepositoryReactiveMongo:
		return "ReactiveMongoRepository"
	case models.RepositoryReactiveR2DBC:
		return "ReactiveCrudRepository"
	default:
		return "JpaRepository"
	}
}

func buildRepository(ctx Context, repositoryName string, opts models.RepositoryOptions) {
	modelName := modelFor(opts.ModelName, repositoryName, SuffixRepository)
	idType := strings.TrimSpace(opts.IDType)
	if idType == "" {
		idType = DefaultIDType
	}
	repoType := models.ParseRepositoryType(string(opts.Type))

	ctx["repositoryName"] = repositoryName
	ctx["modelName"] = modelName
	ctx["modelPackage"] = opts.ModelPackage
	ctx["repositoryType"] = string(repoType)
	ctx["baseType"] = BaseType(repoType)
	ctx["idType"] = idType
	ctx["includeCustomQueries"] = opts.CustomQueries
	ctx["includePagination"] = opts.Pagination
	ctx["modelInstanceName"] = naming.InstanceName(modelName)
	ctx["isReactive"] = repoType.IsReactive()
	ctx["isMongo"] = repoType.IsMongo()
}

func buildSecurity(ctx Context, securityPackage string, opts models.SecurityOptions) {
	userEntity := strings.TrimSpace(opts.UserEntity)
	if userEntity == "" {
		userEntity = DefaultUserEntity
	}
	expiration := opts.JWTExpirationMs
	if expiration <= 0 {
		expiration = DefaultJWTExpiration
	}

	ctx["jwtSecret"] = opts.JWTSecret
	ctx["jwtExpiration"] = expiration
	ctx["jwtExpirationHours"] = expiration / 3600000
	ctx["userEntity"] = userEntity
	ctx["userInstanceName"] = naming.InstanceName(userEntity)
	ctx["userRepositoryName"] = userEntity + SuffixRepository
	ctx["userPackage"] = opts.UserPackage
	ctx["userRepositoryPackage"] = opts.RepositoryPackage
	ctx["controllerPackage"] = opts.ControllerPackage
	ctx["securityPackage"] = securityPackage
	ctx["enableCors"] = opts.CORS
	ctx["jjwtVersion"] = JJWTVersion
}
