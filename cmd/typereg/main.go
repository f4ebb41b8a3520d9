// Command typereg activates declared content types against a host
// runtime.
package main

import "github.com/mesh-intelligence/contenttypes/internal/cli"

func main() {
	cli.Execute()
}
