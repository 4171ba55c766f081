package main

import "lighthouseservers/ptprov/cmd"

func main() {
	cmd.Execute()
}
