package main

import "github.com/jibingeo/next-auth/cmd"

func main() {
	cmd.Execute()
}
