package main

import "slacktime/cmd/slacktime/cmd"

func main() {
	cmd.Execute()
}
