package main

import "github.com/phanipv-web/Whole-genome-analysis/cmd/merops-barplot/cmd"

func main() {
	cmd.Execute()
}
