// Package asset embeds the default game data
package asset

import _ "embed"

// DefaultGameConfig is the YAML configuration used when no -config file is given
//
//go:embed config.yaml
var DefaultGameConfig []byte
