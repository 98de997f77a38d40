package main

import (
	"context"
	"fmt"
	"os"

	"hoadash/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "hoactl:", err)
		os.Exit(1)
	}
}
