package data

import _ "embed"

// SeedProfiles is the built-in catalog, in deck order.
//
//go:embed profiles.json
var SeedProfiles []byte
