package main

import "github.com/KaramelBytes/autoplot-cli/cmd"

func main() {
	cmd.Execute()
}
