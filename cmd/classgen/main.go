package main

import (
	"fmt"
	"os"

	"github.com/teranos/classbuilder/cmd/classgen/commands"
	"github.com/teranos/classbuilder/logger"
)

func main() {
	err := commands.RootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
