package routes

import "slices"

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
}

// Methods returns the sorted, de-duplicated HTTP methods registered by groups
// and their children.
func Methods(groups ...Group) []string {
	var methods []string
	for _, g := range groups {
		for _, r := range g.Routes {
			methods = append(methods, r.Method)
		}
		methods = append(methods, Methods(g.Children...)...)
	}

	slices.Sort(methods)
	return slices.Compact(methods)
}
