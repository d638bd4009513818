// Command ust samples uniform spanning trees with Wilson's algorithm.
//
//	ust sample --graph grid --rows 8 --cols 12 --seed 7 --format maze
//	ust count --graph complete --n 6
//
// Values come from defaults, then an optional YAML file (--config), then
// flags that were set explicitly.
package main

import (
	"fmt"
	"os"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
