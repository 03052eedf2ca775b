package main

import (
	"context"

	"github.com/paucazou/wait-until/internal/cli"
)

func main() {
	ctx := context.Background()
	cli.Main(ctx)
}
