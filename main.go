package main

import "search-manager/cmd"

func main() {
	cmd.Execute()
}
