package main

import "alumni_portal/cmd/portalctl/commands"

func main() {
	commands.Execute()
}
