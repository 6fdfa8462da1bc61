package registry

import (
	"fmt"
	"sort"
)

// topoSortProperties returns names in dependency order: every name appears
// after all names it depends on.
//
// depsFn(name) yields the names that must precede name. The result is
// deterministic: among ready nodes, the one with the smallest order hint
// wins, ties broken by name. A cycle (including a self-loop, which never
// reaches in-degree zero) is reported as an error.
func topoSortProperties(names []string, depsFn func(name string) []string, hintFn func(name string) int) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}

	indeg := make(map[string]int, len(names))
	dependents := make(map[string][]string, len(names))
	known := make(map[string]bool, len(names))

	for _, n := range names {
		known[n] = true
		indeg[n] = 0
	}

	for _, n := range names {
		for _, d := range depsFn(n) {
			if !known[d] {
				return nil, fmt.Errorf("dependency %q of %q is not registered", d, n)
			}

			indeg[n]++
			dependents[d] = append(dependents[d], n)
		}
	}

	before := func(a, b string) bool {
		ha, hb := hintFn(a), hintFn(b)
		if ha != hb {
			return ha < hb
		}

		return a < b
	}

	var ready []string

	for _, n := range names {
		if indeg[n] == 0 {
			ready = append(ready, n)
		}
	}

	sort.Slice(ready, func(i, j int) bool { return before(ready[i], ready[j]) })

	order := make([]string, 0, len(names))

	for len(ready) > 0 {
		n := ready[0]
		ready = ready[1:]

		order = append(order, n)

		for _, dep := range dependents[n] {
			indeg[dep]--
			if indeg[dep] == 0 {
				// Insert while keeping ready sorted.
				k := sort.Search(len(ready), func(i int) bool { return before(dep, ready[i]) })
				ready = append(ready, "")
				copy(ready[k+1:], ready[k:])
				ready[k] = dep
			}
		}
	}

	if len(order) != len(names) {
		return nil, errCycle(names, indeg)
	}

	return order, nil
}

// errCycle names the properties stuck on the cycle to make the schema
// fixable without a debugger.
func errCycle(names []string, indeg map[string]int) error {
	var stuck []string

	for _, n := range names {
		if indeg[n] > 0 {
			stuck = append(stuck, n)
		}
	}

	sort.Strings(stuck)

	return fmt.Errorf("%w involving %v", ErrCircularDependency, stuck)
}
