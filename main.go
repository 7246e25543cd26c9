package main

import "github.com/iksnae/trainlog/cmd"

func main() {
	cmd.Execute()
}
