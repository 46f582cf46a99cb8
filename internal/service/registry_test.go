package service

import (
	"context"
	"testing"

	"github.com/GriffinCanCode/Algebra/internal/types"
)

type mockProvider struct {
	id string
}

func (m *mockProvider) Definition() types.Service {
	return types.Service{
		ID:           m.id,
		Name:         "Mock Service",
		Description:  "A mock service for testing",
		Category:     types.CategoryAlgebra,
		Capabilities: []string{"add", "simplify"},
		Tools: []types.Tool{
			{
				ID:          m.id + ".test",
				Name:        "Test Tool",
				Description: "A test tool",
				Returns:     "string",
			},
		},
	}
}

func (m *mockProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return &types.Result{
		Success: true,
		Data:    map[string]interface{}{"result": "success"},
	}, nil
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	p := &mockProvider{id: "test"}

	if err := r.Register(p); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, ok := r.Get("test"); !ok {
		t.Error("Service should be registered")
	}
}

func TestRegisterEmptyID(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&mockProvider{id: ""}); err == nil {
		t.Error("Register should reject empty service ID")
	}
}

func TestUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test"})
	r.Unregister("test")

	if _, ok := r.Get("test"); ok {
		t.Error("Service should be unregistered")
	}
}

func TestList(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test1"})
	r.Register(&mockProvider{id: "test2"})

	services := r.List(nil)
	if len(services) != 2 {
		t.Errorf("Expected 2 services, got %d", len(services))
	}

	cat := types.CategoryAlgebra
	filtered := r.List(&cat)
	if len(filtered) != 2 {
		t.Errorf("Expected 2 algebra services, got %d", len(filtered))
	}

	other := types.CategorySystem
	empty := r.List(&other)
	if len(empty) != 0 {
		t.Errorf("Expected 0 system services, got %d", len(empty))
	}
}

func TestDiscover(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "algebra"})

	results := r.Discover("algebra add simplify", 5)
	if len(results) == 0 {
		t.Fatal("Should discover algebra service")
	}

	if results[0].ID != "algebra" {
		t.Errorf("Expected algebra service, got %s", results[0].ID)
	}
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test"})

	ctx := context.Background()
	result, err := r.Execute(ctx, "test.test", map[string]interface{}{}, nil)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !result.Success {
		t.Error("Expected successful execution")
	}
}

func TestExecuteInvalidToolID(t *testing.T) {
	r := NewRegistry()

	if _, err := r.Execute(context.Background(), "noseparator", nil, nil); err == nil {
		t.Error("Execute should reject tool IDs without a service prefix")
	}

	if _, err := r.Execute(context.Background(), "missing.tool", nil, nil); err == nil {
		t.Error("Execute should fail for unknown services")
	}
}

func TestStats(t *testing.T) {
	r := NewRegistry()
	r.Register(&mockProvider{id: "test1"})
	r.Register(&mockProvider{id: "test2"})

	stats := r.Stats()
	if stats.Services != 2 {
		t.Errorf("Expected 2 services, got %d", stats.Services)
	}
	if stats.Tools != 2 {
		t.Errorf("Expected 2 tools, got %d", stats.Tools)
	}
	if stats.Categories[string(types.CategoryAlgebra)] != 2 {
		t.Errorf("Expected 2 algebra services, got %d", stats.Categories[string(types.CategoryAlgebra)])
	}
}
