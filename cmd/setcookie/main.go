package main

import "github.com/aatuh/setcookie/internal/cli"

func main() {
	cli.Execute()
}
