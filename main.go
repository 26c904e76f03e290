package main

import "github.com/irfanyen1363/fitcoach-cli/cmd/fitcoach"

func main() {
	fitcoach.Execute()
}
