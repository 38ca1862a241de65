package main

import "github.com/raji2203030/livebot/internal/cli"

func main() {
	cli.Execute()
}
