package main

import "github.com/notargets/hyper1d/cmd"

func main() {
	cmd.Execute()
}
