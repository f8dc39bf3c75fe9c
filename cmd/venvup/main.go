package main

import "github.com/zoriashe/venvup/internal/cli"

func main() {
	cli.Execute()
}
