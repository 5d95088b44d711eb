package main

import "continuo/cmd"

func main() {
	cmd.Execute()
}
