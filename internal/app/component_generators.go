package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/springscaffold/internal/core/fields"
	"github.com/example/springscaffold/internal/core/namespace"
	"github.com/example/springscaffold/internal/core/rendercontext"
	"github.com/example/springscaffold/internal/models"
	"github.com/example/springscaffold/internal/ports/primary"
	"github.com/example/springscaffold/internal/templates/scaffold"
)

// GenerateModel emits a data class.
func (s *ScaffoldServiceImpl) GenerateModel(ctx context.Context, req primary.GenerateModelRequest) (*primary.GenerateResponse, error) {
	r, err := s.start(string(models.KindModel), req.OutputDir, req)
	if err != nil {
		return nil, err
	}

	fs, warnings := fields.Parse(req.Fields, req.FieldsFlag)
	for _, w := range warnings {
		r.warn(w.String())
	}

	ns := r.resolver.Resolve(req.Package, namespace.SubModel)
	r.resp.Namespace = ns
	r.logger.Debug("resolved namespace", "package", ns, "fields", len(fs))

	data, err := rendercontext.Build(models.ArtifactSpec{
		PrimaryName: req.Name,
		Namespace:   ns,
		Kind:        models.KindModel,
		Fields:      fs,
		Options: models.Options{Model: models.ModelOptions{
			TableName:  req.TableName,
			JPA:        req.JPA,
			Lombok:     req.Lombok,
			Validation: req.Validation,
		}},
	})
	if err != nil {
		return nil, err
	}

	if err := r.emit(ctx, r.root, ns, data["className"].(string), scaffold.Model, data); err != nil {
		return nil, err
	}
	return r.finish(ctx), nil
}

// GenerateController emits a REST controller.
func (s *ScaffoldServiceImpl) GenerateController(ctx context.Context, req primary.GenerateControllerRequest) (*primary.GenerateResponse, error) {
	r, err := s.start(string(models.KindController), req.OutputDir, req)
	if err != nil {
		return nil, err
	}

	ns := r.resolver.Resolve(req.Package, namespace.SubController)
	modelPkg := r.resolver.Resolve(req.ModelPackage, namespace.SubModel)
	servicePkg := r.resolver.Resolve(req.ServicePackage, namespace.SubService)
	r.resp.Namespace = ns
	r.logger.Debug("resolved namespaces", "package", ns, "model", modelPkg, "service", servicePkg)

	data, err := rendercontext.Build(models.ArtifactSpec{
		PrimaryName: req.Name,
		Namespace:   ns,
		Kind:        models.KindController,
		Options: models.Options{Controller: models.ControllerOptions{
			ModelName:      req.Model,
			ModelPackage:   modelPkg,
			ServicePackage: servicePkg,
			BasePath:       firstNonEmpty(req.BasePath, s.defaults.BasePath),
			CRUD:           req.CRUD,
			Swagger:        req.Swagger,
			Validation:     req.Validation,
		}},
	})
	if err != nil {
		return nil, err
	}

	if err := r.emit(ctx, r.root, ns, data["controllerName"].(string), scaffold.Controller, data); err != nil {
		return nil, err
	}
	return r.finish(ctx), nil
}

// GenerateService emits a service interface plus implementation, or a single class when
// no interface is requested.
func (s *ScaffoldServiceImpl) GenerateService(ctx context.Context, req primary.GenerateServiceRequest) (*primary.GenerateResponse, error) {
	r, err := s.start(string(models.KindService), req.OutputDir, req)
	if err != nil {
		return nil, err
	}

	ns := r.resolver.Resolve(req.Package, namespace.SubService)
	modelPkg := r.resolver.Resolve(req.ModelPackage, namespace.SubModel)
	repoPkg := r.resolver.Resolve(req.RepositoryPackage, namespace.SubRepository)
	r.resp.Namespace = ns
	r.logger.Debug("resolved namespaces", "package", ns, "model", modelPkg, "repository", repoPkg)

	data, err := rendercontext.Build(models.ArtifactSpec{
		PrimaryName: req.Name,
		Namespace:   ns,
		Kind:        models.KindService,
		Options: models.Options{Service: models.ServiceOptions{
			ModelName:         req.Model,
			ModelPackage:      modelPkg,
			RepositoryPackage: repoPkg,
			Interface:         req.Interface,
			CRUD:              req.CRUD,
			Transactional:     req.Transactional,
			Validation:        req.Validation,
		}},
	})
	if err != nil {
		return nil, err
	}

	if req.Interface {
		if err := r.emit(ctx, r.root, ns, data["interfaceName"].(string), scaffold.ServiceInterface, data); err != nil {
			return nil, err
		}
		if err := r.emit(ctx, r.root, ns, data["implementationName"].(string), scaffold.Service, data); err != nil {
			return nil, err
		}
	} else {
		if err := r.emit(ctx, r.root, ns, data["serviceName"].(string), scaffold.Service, data); err != nil {
			return nil, err
		}
	}
	return r.finish(ctx), nil
}

// GenerateRepository emits a Spring Data repository interface.
func (s *ScaffoldServiceImpl) GenerateRepository(ctx context.Context, req primary.GenerateRepositoryRequest) (*primary.GenerateResponse, error) {
	r, err := s.start(string(models.KindRepository), req.OutputDir, req)
	if err != nil {
		return nil, err
	}

	repoType := models.ParseRepositoryType(req.Type)
	if t := strings.ToUpper(strings.TrimSpace(req.Type)); t != "" && t != string(repoType) {
		r.warn(fmt.Sprintf("unknown repository type %q, using %s", req.Type, repoType))
	}

	ns := r.resolver.Resolve(req.Package, namespace.SubRepository)
	modelPkg := r.resolver.Resolve(req.ModelPackage, namespace.SubModel)
	r.resp.Namespace = ns
	r.logger.Debug("resolved namespaces", "package", ns, "model", modelPkg)

	data, err := rendercontext.Build(models.ArtifactSpec{
		PrimaryName: req.Name,
		Namespace:   ns,
		Kind:        models.KindRepository,
		Options: models.Options{Repository: models.RepositoryOptions{
			ModelName:     req.Model,
			ModelPackage:  modelPkg,
			Type:          repoType,
			IDType:        req.IDType,
			CustomQueries: req.CustomQueries,
			Pagination:    req.Pagination,
		}},
	})
	if err != nil {
		return nil, err
	}

	if err := r.emit(ctx, r.root, ns, data["repositoryName"].(string), scaffold.Repository, data); err != nil {
		return nil, err
	}
	return r.finish(ctx), nil
}
