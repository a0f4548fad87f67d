package main

import "github.com/notargets/mshfmt/cmd"

func main() {
	cmd.Execute()
}
