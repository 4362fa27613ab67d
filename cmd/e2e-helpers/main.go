package main

import "github.com/devicelab-dev/e2e-helpers/pkg/cli"

func main() {
	cli.Execute()
}
