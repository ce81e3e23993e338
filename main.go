package main

import "github.com/tupyy/coerce/cmd"

func main() {
	cmd.Execute()
}
