package main

import "github.com/zdcount/zdcount/cmd/zdcount/cmd"

func main() {
	cmd.Execute()
}
