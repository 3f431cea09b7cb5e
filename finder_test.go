package jstore

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFindUnserializablePaths(t *testing.T) {
	value := map[string]any{
		"a": 1,
		"b": make(chan int),
		"c": []any{1, make(chan int)},
	}

	got := FindUnserializablePaths(value, JSON{})
	// Breadth-first: the shallow finding comes before the deep one, and
	// the encodable branches are pruned entirely.
	want := []string{"$.b", "$.c[1]"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestFindBadKey(t *testing.T) {
	value := map[any]any{
		"ok":          "fine",
		complex(1, 0): 1,
	}

	got := FindUnserializablePaths(value, JSON{})
	// The bad key subsumes its entry; the value 1 is never inspected. The
	// "ok" entry encodes once probed with its concrete key type.
	want := []string{"$<key: (1+0i)>"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestFindNilKey(t *testing.T) {
	// Whether a nil key is a finding depends on the codec: JSON rejects
	// untyped mappings outright, YAML encodes a null key happily.
	jsonValue := map[any]any{nil: 1}
	got := FindUnserializablePaths(jsonValue, JSON{})
	want := []string{"$<key: <nil>>"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("JSON paths mismatch (-want +got):\n%s", diff)
	}

	yamlValue := map[any]any{nil: make(chan int)}
	got = FindUnserializablePaths(yamlValue, YAML{})
	want = []string{"$.<nil>"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("YAML paths mismatch (-want +got):\n%s", diff)
	}
}

func TestFindEncodableValue(t *testing.T) {
	value := map[string]any{
		"a": 1,
		"b": []any{"x", nil, 3.5},
		"c": map[string]any{"nested": true},
	}

	if got := FindUnserializablePaths(value, JSON{}); len(got) != 0 {
		t.Errorf("encodable value reported bad paths: %v", got)
	}
}

func TestFindScalarRoot(t *testing.T) {
	got := FindUnserializablePaths(math.NaN(), JSON{})
	want := []string{"$"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestFindDeepNesting(t *testing.T) {
	value := map[string]any{
		"deep": []any{[]any{make(chan int)}},
	}

	got := FindUnserializablePaths(value, JSON{})
	want := []string{"$.deep[0][0]"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestFindCyclicValueTerminates(t *testing.T) {
	m := map[string]any{"self": nil}
	m["self"] = m

	// The visited guard must stop the walk; without it this would never
	// return. Nothing is reported because the cycle has no unencodable
	// leaf, only an unencodable shape.
	if got := FindUnserializablePaths(m, JSON{}); len(got) != 0 {
		t.Errorf("cyclic value reported bad paths: %v", got)
	}
}

func TestFindReportsDeterministically(t *testing.T) {
	value := map[string]any{
		"zeta":  make(chan int),
		"alpha": make(chan int),
		"mid":   make(chan int),
	}

	want := []string{"$.alpha", "$.mid", "$.zeta"}
	for i := 0; i < 10; i++ {
		got := FindUnserializablePaths(value, JSON{})
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("run %d: paths mismatch (-want +got):\n%s", i, diff)
		}
	}
}
