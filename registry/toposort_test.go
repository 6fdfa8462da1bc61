package registry

import "testing"

func sameOrder(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func TestTopoSortProperties_Chain(t *testing.T) {
	deps := map[string][]string{
		"c": {"b"},
		"b": {"a"},
	}

	order, err := topoSortProperties([]string{"c", "b", "a"},
		func(n string) []string { return deps[n] },
		func(string) int { return 0 },
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !sameOrder(order, []string{"a", "b", "c"}) {
		t.Fatalf("expected [a b c], got %v", order)
	}
}

func TestTopoSortProperties_Diamond(t *testing.T) {
	deps := map[string][]string{
		"d": {"b", "c"},
		"b": {"a"},
		"c": {"a"},
	}

	order, err := topoSortProperties([]string{"a", "b", "c", "d"},
		func(n string) []string { return deps[n] },
		func(string) int { return 0 },
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !sameOrder(order, []string{"a", "b", "c", "d"}) {
		t.Fatalf("expected [a b c d], got %v", order)
	}
}

func TestTopoSortProperties_HintBreaksTies(t *testing.T) {
	hints := map[string]int{"x": 2, "y": 1, "z": 3}

	order, err := topoSortProperties([]string{"x", "y", "z"},
		func(string) []string { return nil },
		func(n string) int { return hints[n] },
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !sameOrder(order, []string{"y", "x", "z"}) {
		t.Fatalf("expected [y x z], got %v", order)
	}
}

func TestTopoSortProperties_Cycle(t *testing.T) {
	deps := map[string][]string{
		"a": {"b"},
		"b": {"a"},
	}

	_, err := topoSortProperties([]string{"a", "b"},
		func(n string) []string { return deps[n] },
		func(string) int { return 0 },
	)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestTopoSortProperties_SelfLoop(t *testing.T) {
	_, err := topoSortProperties([]string{"a"},
		func(string) []string { return []string{"a"} },
		func(string) int { return 0 },
	)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestTopoSortProperties_Empty(t *testing.T) {
	order, err := topoSortProperties(nil, func(string) []string { return nil }, func(string) int { return 0 })
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(order) != 0 {
		t.Fatalf("expected empty order, got %v", order)
	}
}
