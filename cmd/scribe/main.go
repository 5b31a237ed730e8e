package main

import "github.com/MikeSquared-Agency/scribe/internal/cli"

func main() {
	cli.Execute()
}
