// Package api is the client for the fleet control-plane HTTP API.
// It issues JSON requests against the cloud and normalizes failures
// into typed errors; all durable state lives on the server side.
package api

// Edge represents a registered field device and the site it belongs to.
// Loaded via: GET /api/edges
type Edge struct {
	EdgeID string `json:"edge_id"`
	SiteID string `json:"site_id"`
}

// SiteConfig is the desired configuration document for a site.
// The console treats it as opaque JSON: keys and values are whatever
// the operator entered, and the server stores them verbatim.
type SiteConfig = map[string]any

// edgeList is the envelope returned by GET /api/edges.
type edgeList struct {
	Edges []Edge `json:"edges"`
}

// tokenResponse is the body returned when minting an enrollment token.
// The token is single use and is never persisted by the console.
type tokenResponse struct {
	Token string `json:"token"`
}
