package main

import "github.com/pagesmith/pagesmith-backend/cmd"

func main() {
	cmd.Init()
}
