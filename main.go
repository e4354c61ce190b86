package main

import "github.com/kpurdon/siteconf/cmd"

func main() {
	cmd.Execute()
}
