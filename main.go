package main

import "school/cmd"

func main() {
	cmd.Execute()
}
