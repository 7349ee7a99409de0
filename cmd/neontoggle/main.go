// Command neontoggle renders and previews the neon toggle.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/neon/cmd/neontoggle/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
