package main

import "autosar-arxml/internal/cli"

func main() {
	cli.Execute()
}
