package main

import "github.com/Narayan18panigrahy/The-AI-Innovators-Lab/cmd/dataops/cmd"

func main() {
	cmd.Execute()
}
