// Package data bundles the leaderboard dataset into the binary.
package data

import _ "embed"

// ModelsJSON is the dataset served when no dataset_path is configured.
//
//go:embed models.json
var ModelsJSON []byte
