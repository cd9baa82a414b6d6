package main

import "github.com/emiliopalmerini/installhook/internal/cli"

func main() {
	cli.Execute()
}
