package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/springscaffold/internal/core/rendercontext"
	"github.com/example/springscaffold/internal/models"
	"github.com/example/springscaffold/internal/templates/scaffold"
)

func build(t *testing.T, spec models.ArtifactSpec) map[string]any {
	t.Helper()
	ctx, err := rendercontext.Build(spec)
	require.NoError(t, err)
	return ctx
}

func TestModelTemplate(t *testing.T) {
	name := models.NewField("name", "String")
	name.Required = true
	ctx := build(t, models.ArtifactSpec{
		PrimaryName: "Order",
		Namespace:   "com.acme.model",
		Kind:        models.KindModel,
		Fields:      []models.FieldDescriptor{models.NewField("price", "BigDecimal"), name},
		Options:     models.Options{Model: models.ModelOptions{JPA: true, Lombok: true, Validation: true}},
	})

	got, err := newRenderer(t, "").Render(scaffold.Model, ctx)
	require.NoError(t, err)

	want := `package com.acme.model;

import jakarta.persistence.*;
import jakarta.validation.constraints.*;
import java.math.BigDecimal;
import lombok.AllArgsConstructor;
import lombok.Data;
import lombok.NoArgsConstructor;

@Entity
@Table(name = "orders")
@Data
@NoArgsConstructor
@AllArgsConstructor
public class Order {

    @Id
    @GeneratedValue(strategy = GenerationType.IDENTITY)
    private Long id;

    private BigDecimal price;

    @NotNull
    @NotBlank
    private String name;
}
`
	assert.Equal(t, want, got)
}

func TestModelTemplate_PlainClass(t *testing.T) {
	f := models.NewField("email", "String")
	f.Unique = true
	ctx := build(t, models.ArtifactSpec{
		PrimaryName: "Contact",
		Namespace:   "com.acme.model",
		Kind:        models.KindModel,
		Fields:      []models.FieldDescriptor{f, models.NewField("age", "Integer")},
	})

	got, err := newRenderer(t, "").Render(scaffold.Model, ctx)
	require.NoError(t, err)

	assert.Contains(t, got, "import java.util.Objects;")
	assert.NotContains(t, got, "@Entity")
	assert.NotContains(t, got, "@Column")
	assert.Contains(t, got, "public String getEmail() {")
	assert.Contains(t, got, "public void setAge(Integer age) {")
	assert.Contains(t, got, "return Objects.equals(email, that.email)\n                && Objects.equals(age, that.age);")
	assert.Contains(t, got, "return Objects.hash(email, age);")
	assert.Contains(t, got, `+ ", age=" + age`)
}

func TestControllerTemplate(t *testing.T) {
	ctx := build(t, models.ArtifactSpec{
		PrimaryName: "OrderController",
		Namespace:   "com.acme.controller",
		Kind:        models.KindController,
		Options: models.Options{Controller: models.ControllerOptions{
			ModelPackage:   "com.acme.model",
			ServicePackage: "com.acme.service",
			CRUD:           true,
			Swagger:        true,
			Validation:     true,
		}},
	})

	got, err := newRenderer(t, "").Render(scaffold.Controller, ctx)
	require.NoError(t, err)

	assert.Contains(t, got, "import com.acme.model.Order;")
	assert.Contains(t, got, "import com.acme.service.OrderService;")
	assert.Contains(t, got, `@RequestMapping("/api/v1/orders")`)
	assert.Contains(t, got, "private final OrderService orderService;")
	assert.Contains(t, got, "@RequestBody @Valid Order order")
	assert.Contains(t, got, `@Tag(name = "Order"`)
}

func TestServiceTemplates(t *testing.T) {
	spec := models.ArtifactSpec{
		PrimaryName: "OrderService",
		Namespace:   "com.acme.service",
		Kind:        models.KindService,
		Options: models.Options{Service: models.ServiceOptions{
			ModelPackage:      "com.acme.model",
			RepositoryPackage: "com.acme.repository",
			Interface:         true,
			CRUD:              true,
			Transactional:     true,
		}},
	}
	r := newRenderer(t, "")

	iface, err := r.Render(scaffold.ServiceInterface, build(t, spec))
	require.NoError(t, err)
	assert.Contains(t, iface, "public interface OrderService {")
	assert.Contains(t, iface, "Optional<Order> findById(Long id);")

	impl, err := r.Render(scaffold.Service, build(t, spec))
	require.NoError(t, err)
	assert.Contains(t, impl, "public class OrderServiceImpl implements OrderService {")
	assert.Contains(t, impl, "    @Override\n    @Transactional(readOnly = true)\n    public List<Order> findAll() {")
	assert.Contains(t, impl, "private final OrderRepository orderRepository;")

	spec.Options.Service.Interface = false
	single, err := r.Render(scaffold.Service, build(t, spec))
	require.NoError(t, err)
	assert.Contains(t, single, "public class OrderService {")
	assert.NotContains(t, single, "@Override")
}

func TestRepositoryTemplate(t *testing.T) {
	tests := []struct {
		repoType models.RepositoryType
		want     []string
		absent   []string
	}{
		{
			models.RepositoryJPA,
			[]string{"extends JpaRepository<Product, Long>", "Page<Product> findAll(Pageable pageable);", "import org.springframework.data.jpa.repository.Query;"},
			nil,
		},
		{
			models.RepositoryMongoDB,
			[]string{"extends MongoRepository<Product, Long>", "import org.springframework.data.mongodb.repository.Query;"},
			[]string{"jpa"},
		},
		{
			models.RepositoryReactiveR2DBC,
			[]string{"extends ReactiveCrudRepository<Product, Long>", "import reactor.core.publisher.Flux;"},
			[]string{"Pageable", "java.util.List"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.repoType), func(t *testing.T) {
			ctx := build(t, models.ArtifactSpec{
				PrimaryName: "ProductRepository",
				Namespace:   "com.acme.repository",
				Kind:        models.KindRepository,
				Options: models.Options{Repository: models.RepositoryOptions{
					ModelPackage:  "com.acme.model",
					Type:          tt.repoType,
					CustomQueries: true,
					Pagination:    true,
				}},
			})
			got, err := newRenderer(t, "").Render(scaffold.Repository, ctx)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
			for _, a := range tt.absent {
				assert.NotContains(t, got, a)
			}
		})
	}
}

func TestSecurityTemplates(t *testing.T) {
	ctx := build(t, models.ArtifactSpec{
		PrimaryName: "security",
		Namespace:   "com.acme.security",
		Kind:        models.KindSecurityBundle,
		Options: models.Options{Security: models.SecurityOptions{
			JWTSecret:         "dev-secret",
			UserEntity:        "Account",
			UserPackage:       "com.acme.model",
			RepositoryPackage: "com.acme.repository",
			ControllerPackage: "com.acme.controller",
			CORS:              true,
		}},
	})
	r := newRenderer(t, "")

	for _, name := range scaffold.Names() {
		if !strings.HasPrefix(name, "security/") {
			continue
		}
		t.Run(name, func(t *testing.T) {
			got, err := r.Render(name, ctx)
			require.NoError(t, err)
			assert.NotContains(t, got, "<no value>")
		})
	}

	cfg, err := r.Render(scaffold.SecurityConfig, ctx)
	require.NoError(t, err)
	assert.Contains(t, cfg, "public CorsConfigurationSource corsConfigurationSource()")

	utils, err := r.Render(scaffold.JwtUtils, ctx)
	require.NoError(t, err)
	assert.Contains(t, utils, `@Value("${app.jwt.secret:dev-secret}")`)
	assert.Contains(t, utils, `@Value("${app.jwt.expiration-ms:86400000}")`)

	auth, err := r.Render(scaffold.AuthController, ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(auth, "package com.acme.controller;"))

	uds, err := r.Render(scaffold.UserDetailsServiceImpl, ctx)
	require.NoError(t, err)
	assert.Contains(t, uds, "import com.acme.repository.AccountRepository;")
	assert.Contains(t, uds, "private final AccountRepository accountRepository;")

	methods, err := r.Render(scaffold.RepositoryMethods, ctx)
	require.NoError(t, err)
	assert.Contains(t, methods, "Optional<Account> findByUsername(String username);")
}

func TestProjectTemplates(t *testing.T) {
	ctx := build(t, models.ArtifactSpec{
		PrimaryName: "order-api",
		Namespace:   "com.acme.orders",
		Kind:        models.KindProjectSkeleton,
		Options: models.Options{Project: models.ProjectOptions{
			SpringBootVersion: "3.2.0",
			JavaVersion:       "17",
			Dependencies:      []string{"web", "jpa", "test"},
			Database:          models.DatabaseH2,
			Docker:            true,
		}},
	})
	r := newRenderer(t, "")

	for _, name := range scaffold.Names() {
		if !strings.HasPrefix(name, "project/") {
			continue
		}
		t.Run(name, func(t *testing.T) {
			got, err := r.Render(name, ctx)
			require.NoError(t, err)
			assert.NotContains(t, got, "<no value>")
		})
	}

	pom, err := r.Render(scaffold.ProjectPom, ctx)
	require.NoError(t, err)
	assert.Contains(t, pom, "<artifactId>order-api</artifactId>")
	assert.Contains(t, pom, "<groupId>com.acme.orders</groupId>")
	assert.Contains(t, pom, "\t\t\t<artifactId>h2</artifactId>\n\t\t\t<scope>runtime</scope>")
	assert.Equal(t, 1, strings.Count(pom, "</dependencies>"))

	main, err := r.Render(scaffold.ProjectMain, ctx)
	require.NoError(t, err)
	assert.Contains(t, main, "public class OrderApiApplication {")

	props, err := r.Render(scaffold.ProjectProperties, ctx)
	require.NoError(t, err)
	assert.Contains(t, props, "spring.datasource.url=jdbc:h2:mem:testdb")
	assert.Contains(t, props, "spring.jpa.properties.hibernate.dialect=org.hibernate.dialect.H2Dialect")
	assert.Contains(t, props, "spring.h2.console.enabled=true")
}
