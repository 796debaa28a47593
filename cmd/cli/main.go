package main

import "github.com/mchmarny/modelrep/pkg/cli"

func main() {
	cli.Execute()
}
