package cmd

import (
	"fmt"
	"log"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown report to the terminal.
func printMarkdown(md string) {
	if *plainOutput {
		fmt.Println(md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		log.Printf("could not render markdown: %v", err)
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
