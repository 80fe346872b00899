package dto

// NavItem is one entry of the role-scoped navigation menu.
type NavItem struct {
	Path  string `json:"path"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// PageResponse is the bootstrap payload for an admin page route: the page
// itself plus the navigation the current role is allowed to see.
type PageResponse struct {
	Path         string    `json:"path"`
	Label        string    `json:"label"`
	Icon         string    `json:"icon,omitempty"`
	DefaultRoute string    `json:"default_route"`
	Nav          []NavItem `json:"nav"`
}
