package main

import "github.com/emiliopalmerini/hydrate/internal/cli"

func main() {
	cli.Execute()
}
