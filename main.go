package main

import "resumecraft/cmd"

func main() {
	cmd.Execute()
}
