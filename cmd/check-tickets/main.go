package main

import (
	"fmt"
	"os"

	"github.com/GitRealm/dagu-check-tickets/cmd/check-tickets/commands"
	"github.com/GitRealm/dagu-check-tickets/cmd/check-tickets/internal/clierr"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(clierr.ExitCodeOf(err))
	}
}
