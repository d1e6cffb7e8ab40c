package generation

import "testing"

func TestHashInputsKeyOrderIndependent(t *testing.T) {
	a := map[string]any{"a": 1.0, "b": "two", "nested": map[string]any{"x": true, "y": nil}}
	b := map[string]any{"nested": map[string]any{"y": nil, "x": true}, "b": "two", "a": 1.0}

	if HashInputs(a) != HashInputs(b) {
		t.Fatal("hashes differ for equal maps")
	}
}

func TestHashInputsSensitiveToValues(t *testing.T) {
	a := map[string]any{"name": "Jane"}
	b := map[string]any{"name": "Joan"}

	if HashInputs(a) == HashInputs(b) {
		t.Fatal("hashes equal for different values")
	}
}

func TestHashInputsStable(t *testing.T) {
	inputs := map[string]any{"name": "Jane", "items": []any{"one", 2.0, false}}

	first := HashInputs(inputs)
	for i := 0; i < 10; i++ {
		if HashInputs(inputs) != first {
			t.Fatal("hash is not deterministic")
		}
	}
	if len(first) != 64 {
		t.Fatalf("digest length = %d, want 64 hex chars", len(first))
	}
}

func TestHashInputsCoercesUnknownTypes(t *testing.T) {
	type custom struct{ V string }
	inputs := map[string]any{"obj": custom{V: "x"}}

	if got := HashInputs(inputs); len(got) != 64 {
		t.Fatalf("digest length = %d", len(got))
	}
}
