package main

import "github.com/llehouerou/setbreak/internal/cli"

func main() {
	cli.Execute()
}
