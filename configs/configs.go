// Package configs holds data files embedded into the binary.
package configs

import _ "embed"

// Personas is the built-in persona definition file.
//
//go:embed personas.yaml
var Personas []byte
