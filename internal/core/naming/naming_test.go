package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTableName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"User", "users"},
		{"Category", "categories"},
		{"Address", "addresses"},
		{"Box", "boxes"},
		{"Brush", "brushes"},
		{"Match", "matches"},
		{"Quiz", "quizes"},
		{"OrderItem", "order_items"},
		{"CustomerAddress", "customer_addresses"},
		{"Day", "daies"},
		{"Person", "persons"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, TableName(tt.input))
		})
	}
}

func TestTableName_Deterministic(t *testing.T) {
	for _, name := range []string{"User", "HTTPRequest", "Category", "a"} {
		assert.Equal(t, TableName(name), TableName(name))
	}
}

func TestInstanceName(t *testing.T) {
	assert.Equal(t, "userService", InstanceName("UserService"))
	assert.Equal(t, "order", InstanceName("Order"))
	assert.Equal(t, "already", InstanceName("already"))
	assert.Equal(t, "", InstanceName(""))
	assert.Equal(t, "éclair", InstanceName("Éclair"))
}

func TestResourcePath(t *testing.T) {
	assert.Equal(t, "orders", ResourcePath("Order"))
	assert.Equal(t, "categorys", ResourcePath("Category"))
	assert.Equal(t, "s", ResourcePath(""))
}

func TestInferAssociatedEntity(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		suffix string
		want   string
	}{
		{"controller suffix", "OrderController", "Controller", "Order"},
		{"service suffix", "ProductService", "Service", "Product"},
		{"repository suffix", "CustomerRepository", "Repository", "Customer"},
		{"no suffix", "Widget", "Controller", "WidgetModel"},
		{"suffix only", "Controller", "Controller", "ControllerModel"},
		{"empty suffix", "Widget", "", "WidgetModel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferAssociatedEntity(tt.input, tt.suffix))
		})
	}
}

func TestInterfaceImplPair(t *testing.T) {
	for _, name := range []string{"UserService", "Billing", ""} {
		iface, impl := InterfaceImplPair(name)
		assert.Equal(t, name, iface)
		assert.Equal(t, name+"Impl", impl)
	}
}

func TestToPascalCase(t *testing.T) {
	assert.Equal(t, "MyApp", ToPascalCase("my-app"))
	assert.Equal(t, "BlogApi", ToPascalCase("blog_api"))
	assert.Equal(t, "MyApp", ToPascalCase("myApp"))
	assert.Equal(t, "Shop", ToPascalCase("shop"))
}

func TestToKebabCase(t *testing.T) {
	assert.Equal(t, "my-app", ToKebabCase("my-app"))
	assert.Equal(t, "my-shop-api", ToKebabCase("My Shop_API"))
	assert.Equal(t, "ecommerce", ToKebabCase("--Ecommerce--"))
}
