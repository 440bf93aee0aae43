package config

import (
	_ "embed"
)

//go:embed example.yaml
var exampleYaml string

// Example returns a commented starter configuration.
func Example() string {
	return exampleYaml
}
