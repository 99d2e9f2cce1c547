package main

import "sort"

// labelTable maps label names to the index of their LABEL line.
type labelTable map[string]int

// define binds name to line; redefining a name silently rebinds it.
func (lt labelTable) define(name string, line int) {
	lt[name] = line
}

// names returns the defined label names in line order.
func (lt labelTable) names() []string {
	names := make([]string, 0, len(lt))
	for name := range lt {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if li, lj := lt[names[i]], lt[names[j]]; li != lj {
			return li < lj
		}
		return names[i] < names[j]
	})
	return names
}
