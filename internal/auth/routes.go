package auth

import "strings"

// RouteNode is one entry of the declared route tree. Children inherit their parent's
// requirements: a flag set anywhere on the path to a route applies to it.
type RouteNode struct {
	Path     string
	Name     string
	Title    string
	Redirect string
	Meta     RouteRequirement
	Children []RouteNode
}

// Route is a resolved leaf or branch with its full path and effective requirements.
type Route struct {
	Path     string
	Name     string
	Title    string
	Redirect string
	Meta     RouteRequirement
}

// Flatten resolves the tree into routes in declaration order, parents before children.
func Flatten(nodes []RouteNode) []Route {
	var out []Route
	for _, n := range nodes {
		out = flatten(out, n, "", RouteRequirement{})
	}
	return out
}

func flatten(out []Route, n RouteNode, prefix string, inherited RouteRequirement) []Route {
	path := joinRoutePath(prefix, n.Path)
	meta := RouteRequirement{
		RequiresAuth:  inherited.RequiresAuth || n.Meta.RequiresAuth,
		RequiresAdmin: inherited.RequiresAdmin || n.Meta.RequiresAdmin,
	}
	if n.Name != "" || n.Redirect != "" {
		out = append(out, Route{
			Path:     path,
			Name:     n.Name,
			Title:    n.Title,
			Redirect: n.Redirect,
			Meta:     meta,
		})
	}
	for _, child := range n.Children {
		out = flatten(out, child, path, meta)
	}
	return out
}

func joinRoutePath(prefix, path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	prefix = strings.TrimRight(prefix, "/")
	if path == "" {
		if prefix == "" {
			return "/"
		}
		return prefix
	}
	return prefix + "/" + path
}
