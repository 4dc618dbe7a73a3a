package app

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/springscaffold/internal/logx"
	"github.com/example/springscaffold/internal/ports/primary"
	"github.com/example/springscaffold/internal/scaffolderr"
	"github.com/example/springscaffold/internal/templates/scaffold"
)

const root = "/out"

func outcomes(resp *primary.GenerateResponse) map[string]primary.ArtifactOutcome {
	out := make(map[string]primary.ArtifactOutcome)
	for _, a := range resp.Artifacts {
		out[a.Name] = a.Outcome
	}
	return out
}

func TestGenerateModel(t *testing.T) {
	f := newTestFixture()
	ctx := context.Background()

	resp, err := f.svc.GenerateModel(ctx, primary.GenerateModelRequest{
		OutputDir: root,
		Name:      "Order",
		Fields:    []string{"name:String", "broken", "price:BigDecimal"},
		JPA:       true,
		Lombok:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, "com.acme.model", resp.Namespace)
	assert.Equal(t, "model", resp.Command)
	assert.NotEmpty(t, resp.RunID)
	assert.Equal(t, []string{"src/main/java/com/acme/model/Order.java"}, f.writer.paths(root))
	assert.Equal(t, 1, f.detector.calls)
	assert.Equal(t, []string{root}, f.detector.roots)

	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "broken")

	data := f.renderer.data[scaffold.Model]
	assert.Equal(t, "Order", data["className"])
	assert.Equal(t, "orders", data["tableName"])
	assert.Len(t, data["fields"], 2)
	assert.Contains(t, data["imports"], "java.math.BigDecimal")

	assert.Equal(t, primary.OutcomeCreated, outcomes(resp)["Order"])
}

func TestGenerateModel_AlreadyExists(t *testing.T) {
	f := newTestFixture()
	ctx := context.Background()
	req := primary.GenerateModelRequest{OutputDir: root, Name: "Order", FieldsFlag: "name:String"}

	_, err := f.svc.GenerateModel(ctx, req)
	require.NoError(t, err)
	path := f.writer.SourcePath(root, "com.acme.model", "Order")
	f.writer.files[path] = "hand edited"

	resp, err := f.svc.GenerateModel(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, primary.OutcomeExists, outcomes(resp)["Order"])
	assert.Equal(t, "hand edited", f.writer.files[path])
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "already exists")
}

func TestGenerateModel_WarningsNotLoggedAtWarnLevel(t *testing.T) {
	f := newTestFixture()
	var logs bytes.Buffer
	svc := NewScaffoldService(f.detector, f.renderer, f.writer, nil, Defaults{},
		logx.New(&logs, logx.Options{Level: "warn"}))

	resp, err := svc.GenerateModel(context.Background(), primary.GenerateModelRequest{
		OutputDir: root,
		Name:      "Order",
		Fields:    []string{"broken"},
	})
	require.NoError(t, err)

	require.Len(t, resp.Warnings, 1)
	assert.Empty(t, logs.String())
}

func TestGenerateModel_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  primary.GenerateModelRequest
	}{
		{"missing name", primary.GenerateModelRequest{OutputDir: root}},
		{"blank name", primary.GenerateModelRequest{OutputDir: root, Name: "   "}},
		{"missing output", primary.GenerateModelRequest{Name: "Order"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFixture()
			_, err := f.svc.GenerateModel(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, scaffolderr.IsInvalidInput(err))
			assert.Empty(t, f.writer.files)
		})
	}
}

func TestGenerateModel_AbsolutePackageSkipsDetection(t *testing.T) {
	f := newTestFixture()

	resp, err := f.svc.GenerateModel(context.Background(), primary.GenerateModelRequest{
		OutputDir: root, Name: "Order", Package: "org.shop.domain",
	})
	require.NoError(t, err)
	assert.Equal(t, "org.shop.domain", resp.Namespace)
	assert.Zero(t, f.detector.calls)
}

func TestGenerateModel_RelativePackage(t *testing.T) {
	f := newTestFixture()

	resp, err := f.svc.GenerateModel(context.Background(), primary.GenerateModelRequest{
		OutputDir: root, Name: "Order", Package: "entity",
	})
	require.NoError(t, err)
	assert.Equal(t, "com.acme.entity", resp.Namespace)
}

func TestGenerateController(t *testing.T) {
	f := newTestFixture()

	resp, err := f.svc.GenerateController(context.Background(), primary.GenerateControllerRequest{
		OutputDir:  root,
		Name:       "OrderController",
		CRUD:       true,
		Validation: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "com.acme.controller", resp.Namespace)
	assert.Equal(t, []string{"src/main/java/com/acme/controller/OrderController.java"}, f.writer.paths(root))
	assert.Equal(t, 1, f.detector.calls, "three relative resolutions share one detection")

	data := f.renderer.data[scaffold.Controller]
	assert.Equal(t, "Order", data["modelName"])
	assert.Equal(t, "com.acme.model", data["modelPackage"])
	assert.Equal(t, "com.acme.service", data["servicePackage"])
	assert.Equal(t, "OrderService", data["serviceName"])
	assert.Equal(t, "orderService", data["serviceInstanceName"])
	assert.Equal(t, "orders", data["resourcePath"])
	assert.Equal(t, "/api/v1", data["basePath"])
}

func TestGenerateController_ConfiguredBasePath(t *testing.T) {
	f := newTestFixture()
	f.svc.defaults.BasePath = "/api/v2"

	_, err := f.svc.GenerateController(context.Background(), primary.GenerateControllerRequest{
		OutputDir: root, Name: "OrderController",
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/v2", f.renderer.data[scaffold.Controller]["basePath"])

	_, err = f.svc.GenerateController(context.Background(), primary.GenerateControllerRequest{
		OutputDir: root, Name: "ItemController", BasePath: "/items/",
	})
	require.NoError(t, err)
	assert.Equal(t, "/items", f.renderer.data[scaffold.Controller]["basePath"])
}

func TestGenerateController_InvalidBasePath(t *testing.T) {
	f := newTestFixture()

	_, err := f.svc.GenerateController(context.Background(), primary.GenerateControllerRequest{
		OutputDir: root, Name: "OrderController", BasePath: "api",
	})
	require.Error(t, err)
	assert.True(t, scaffolderr.IsInvalidInput(err))
}

func TestGenerateController_AllAbsolute(t *testing.T) {
	f := newTestFixture()

	_, err := f.svc.GenerateController(context.Background(), primary.GenerateControllerRequest{
		OutputDir:      root,
		Name:           "Orders",
		Package:        "a.web",
		ModelPackage:   "a.model",
		ServicePackage: "a.service",
	})
	require.NoError(t, err)
	assert.Zero(t, f.detector.calls)
	assert.Equal(t, "OrdersModel", f.renderer.data[scaffold.Controller]["modelName"])
}

func TestGenerateService(t *testing.T) {
	tests := []struct {
		name      string
		iface     bool
		wantFiles []string
		templates []string
	}{
		{
			name:      "interface and implementation",
			iface:     true,
			wantFiles: []string{"src/main/java/com/acme/service/OrderService.java", "src/main/java/com/acme/service/OrderServiceImpl.java"},
			templates: []string{scaffold.ServiceInterface, scaffold.Service},
		},
		{
			name:      "single class",
			iface:     false,
			wantFiles: []string{"src/main/java/com/acme/service/OrderService.java"},
			templates: []string{scaffold.Service},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFixture()

			_, err := f.svc.GenerateService(context.Background(), primary.GenerateServiceRequest{
				OutputDir: root, Name: "OrderService", Interface: tt.iface, CRUD: true,
			})
			require.NoError(t, err)

			assert.ElementsMatch(t, tt.wantFiles, f.writer.paths(root))
			assert.Equal(t, tt.templates, f.renderer.calls)

			data := f.renderer.data[scaffold.Service]
			assert.Equal(t, "OrderRepository", data["repositoryName"])
			assert.Equal(t, "OrderServiceImpl", data["implementationName"])
			assert.Equal(t, "com.acme.repository", data["repositoryPackage"])
		})
	}
}

func TestGenerateRepository(t *testing.T) {
	f := newTestFixture()

	resp, err := f.svc.GenerateRepository(context.Background(), primary.GenerateRepositoryRequest{
		OutputDir: root, Name: "OrderRepository", Type: "reactive_mongo", IDType: "String",
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Warnings)

	data := f.renderer.data[scaffold.Repository]
	assert.Equal(t, "ReactiveMongoRepository", data["baseType"])
	assert.Equal(t, "String", data["idType"])
	assert.Equal(t, "Order", data["modelName"])
	assert.Equal(t, []string{"src/main/java/com/acme/repository/OrderRepository.java"}, f.writer.paths(root))
}

func TestGenerateRepository_UnknownTypeFallsBack(t *testing.T) {
	f := newTestFixture()

	resp, err := f.svc.GenerateRepository(context.Background(), primary.GenerateRepositoryRequest{
		OutputDir: root, Name: "OrderRepository", Type: "cassandra",
	})
	require.NoError(t, err)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "cassandra")
	assert.Equal(t, "JpaRepository", f.renderer.data[scaffold.Repository]["baseType"])
}

func TestGenerate_RenderFailure(t *testing.T) {
	f := newTestFixture()
	f.renderer.errs[scaffold.Model] = errors.New("boom")

	_, err := f.svc.GenerateModel(context.Background(), primary.GenerateModelRequest{OutputDir: root, Name: "Order"})
	require.Error(t, err)

	var tmplErr *scaffolderr.TemplateError
	require.True(t, errors.As(err, &tmplErr))
	assert.Equal(t, scaffold.Model, tmplErr.Template)
	assert.Empty(t, f.writer.files)
	assert.Empty(t, f.journal.records)
}

func TestGenerate_WriteFailure(t *testing.T) {
	f := newTestFixture()
	f.writer.writeErr = errDisk

	_, err := f.svc.GenerateModel(context.Background(), primary.GenerateModelRequest{OutputDir: root, Name: "Order"})
	require.Error(t, err)

	var fsErr *scaffolderr.FilesystemError
	assert.True(t, errors.As(err, &fsErr))
	assert.False(t, scaffolderr.IsAlreadyExists(err))
}

func TestGenerate_DryRun(t *testing.T) {
	f := newTestFixture()
	f.writer.dryRun = true

	resp, err := f.svc.GenerateModel(context.Background(), primary.GenerateModelRequest{OutputDir: root, Name: "Order"})
	require.NoError(t, err)
	assert.Equal(t, primary.OutcomePlanned, outcomes(resp)["Order"])
	assert.Empty(t, f.writer.files)
}

func TestGenerate_Journal(t *testing.T) {
	f := newTestFixture()

	resp, err := f.svc.GenerateService(context.Background(), primary.GenerateServiceRequest{
		OutputDir: root, Name: "OrderService", Interface: true,
	})
	require.NoError(t, err)

	require.Len(t, f.journal.records, 2)
	for _, rec := range f.journal.records {
		assert.Equal(t, resp.RunID, rec.RunID)
		assert.Equal(t, "service", rec.Command)
		assert.Equal(t, "created", rec.Outcome)
	}
	assert.Equal(t, "OrderService", f.journal.records[0].Artifact)
	assert.Equal(t, "OrderServiceImpl", f.journal.records[1].Artifact)
}

func TestGenerate_JournalFailureIsNotFatal(t *testing.T) {
	f := newTestFixture()
	f.journal.recordErr = errDisk

	resp, err := f.svc.GenerateModel(context.Background(), primary.GenerateModelRequest{OutputDir: root, Name: "Order"})
	require.NoError(t, err)
	assert.Len(t, resp.Artifacts, 1)
}

func TestGenerate_NoJournal(t *testing.T) {
	f := newTestFixture()
	svc := NewScaffoldService(f.detector, f.renderer, f.writer, nil, Defaults{}, logx.Discard())

	_, err := svc.GenerateModel(context.Background(), primary.GenerateModelRequest{OutputDir: root, Name: "Order"})
	require.NoError(t, err)
	assert.Empty(t, f.journal.records)
}

func TestGenerate_RunIDsDiffer(t *testing.T) {
	f := newTestFixture()
	ctx := context.Background()

	first, err := f.svc.GenerateModel(ctx, primary.GenerateModelRequest{OutputDir: root, Name: "Order"})
	require.NoError(t, err)
	second, err := f.svc.GenerateModel(ctx, primary.GenerateModelRequest{OutputDir: root, Name: "Invoice"})
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
	assert.Equal(t, 2, f.detector.calls, "one detection per run")
}
