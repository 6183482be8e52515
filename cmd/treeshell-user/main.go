// Command treeshell-user serves the TreeShell MCP bridge for human operators.
package main

import (
	"log"
	"os"

	"github.com/viant/treeshell"
	"github.com/viant/treeshell/bridge"
)

func main() {
	if err := treeshell.Run(os.Args[1:], bridge.VariantRendered); err != nil {
		log.Fatal(err)
	}
}
