package main

import "github.com/hrops/hr-dashboard/cmd"

func main() {
	cmd.Execute()
}
