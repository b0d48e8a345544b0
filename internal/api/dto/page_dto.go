package dto

import "github.com/spec-kit/rental-console/internal/service"

// PageView is what a page route renders: its identity, the session it was built for, the
// actions the session may see and the page data.
type PageView struct {
	Route   string               `json:"route"`
	Path    string               `json:"path"`
	Title   string               `json:"title,omitempty"`
	Session service.SessionState `json:"session"`
	Actions []string             `json:"actions"`
	Data    any                  `json:"data,omitempty"`
}
