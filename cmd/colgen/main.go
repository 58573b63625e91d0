// Command colgen generates named columnar tables from a YAML schema.
//
//	colgen validate -f schema.yaml
//	colgen generate -f schema.yaml -o ./particles
//	colgen generate -f schema.yaml -o ./particles --watch
//
// Typical use is a go:generate directive next to the schema:
//
//	//go:generate go run github.com/hupe1980/colstore/cmd/colgen generate -f schema.yaml -o .
package main

import (
	"os"
)

var exitFunc = os.Exit

func main() {
	if err := newRootCmd().Execute(); err != nil {
		exitFunc(1)
	}
}
