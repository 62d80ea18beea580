package main

import "github.com/gofluids/golbm/cmd"

func main() {
	cmd.Execute()
}
