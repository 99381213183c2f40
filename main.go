package main

import "github.com/notargets/gotrimesh/cmd"

func main() {
	cmd.Execute()
}
