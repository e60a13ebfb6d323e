package validate

import (
	"testing"

	pkgerrors "github.com/venuelane/seating-backend/pkg/errors"
)

type sample struct {
	ID    string  `json:"id" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
	X     float64 `json:"x" validate:"min=0,max=100"`
}

func TestStructPasses(t *testing.T) {
	if err := Struct(sample{ID: "a", Price: 10, X: 50}); err != nil {
		t.Fatalf("expected valid struct, got %v", err)
	}
	if !Ok(sample{ID: "a", X: 100}) {
		t.Fatal("expected Ok to accept boundary values")
	}
}

func TestStructReportsFieldsByJSONName(t *testing.T) {
	err := Struct(sample{Price: -1, X: 101})
	if err == nil {
		t.Fatal("expected validation error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected coded validation error, got %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok {
		t.Fatalf("expected details map, got %T", typed.Details())
	}
	for _, field := range []string{"id", "price", "x"} {
		if _, present := details[field]; !present {
			t.Fatalf("expected detail for field %q, got %v", field, details)
		}
	}
}

func TestOkRejectsInvalid(t *testing.T) {
	if Ok(sample{ID: "", X: 5}) {
		t.Fatal("expected missing id to fail")
	}
}
