package main

import "github.com/zephyrtronium/postfix/internal/cli"

func main() {
	cli.Execute()
}
