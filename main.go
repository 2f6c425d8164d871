package main

import "github.com/notargets/gocentral/cmd"

func main() {
	cmd.Execute()
}
