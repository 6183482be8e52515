// Command treeshell-agent serves the TreeShell MCP bridge for autonomous agents.
package main

import (
	"log"
	"os"

	"github.com/viant/treeshell"
	"github.com/viant/treeshell/bridge"
)

func main() {
	if err := treeshell.Run(os.Args[1:], bridge.VariantRaw); err != nil {
		log.Fatal(err)
	}
}
