/*
Copyright © 2026 JACOB ARTHURS
*/
package main

import "github.com/jacobarthurs/scenelint/cmd"

func main() {
	cmd.Execute()
}
