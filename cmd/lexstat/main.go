package main

import "lexstat/internal/cli"

func main() {
	cli.Execute()
}
