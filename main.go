package main

import "github.com/enterprisetech/admin-seed/cmd"

func main() {
	cmd.Execute()
}
