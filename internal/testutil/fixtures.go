package testutil

import "fleetdeck/api"

// Edges returns a sample edge collection spanning two sites.
func Edges() []api.Edge {
	return []api.Edge{
		{EdgeID: "edge-1", SiteID: "plant-7"},
		{EdgeID: "edge-2", SiteID: "plant-7"},
		{EdgeID: "edge-3", SiteID: "depot-2"},
	}
}

// DesiredConfig returns a sample desired configuration document the way
// the API would serve it (JSON numbers decode as float64).
func DesiredConfig() api.SiteConfig {
	return api.SiteConfig{
		"pcc_max_export_kw": float64(150),
		"mode":              "export",
		"feeders":           []any{"f1", "f2"},
	}
}
