package ui

import (
	"strings"
)

// RouteKind names a screen.
type RouteKind int

const (
	RouteList RouteKind = iota
	RouteDetail
)

// Route is the current location: the catalog list, or the detail screen
// for Param (an id or a name, exactly as entered).
type Route struct {
	Kind  RouteKind
	Param string
}

const detailPrefix = "/pokemon/"

// ListRoute is the catalog list.
func ListRoute() Route { return Route{Kind: RouteList} }

// DetailRoute is the detail screen for param.
func DetailRoute(param string) Route { return Route{Kind: RouteDetail, Param: param} }

// Path renders the route as "/" or "/pokemon/<param>".
func (r Route) Path() string {
	if r.Kind == RouteDetail {
		return detailPrefix + r.Param
	}
	return "/"
}

// ParseRoute is the inverse of Path. Unknown paths resolve to the list.
func ParseRoute(path string) Route {
	trimmed := strings.TrimSpace(path)
	if param, ok := strings.CutPrefix(trimmed, detailPrefix); ok {
		param = strings.TrimSuffix(param, "/")
		if param != "" && !strings.Contains(param, "/") {
			return DetailRoute(param)
		}
	}
	return ListRoute()
}
