package main

import "github.com/Foodshareclub/commitguard/cmd"

func main() {
	cmd.Execute()
}
