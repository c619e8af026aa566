package main

import "device-auditor/cmd"

func main() {
	cmd.Execute()
}
