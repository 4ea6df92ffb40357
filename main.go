package main

import "github.com/Govind-619/CorpSite/cmd"

func main() {
	cmd.Execute()
}
