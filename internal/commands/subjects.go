package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List the allowed subjects",
	Run: withApp(func(cmd *cobra.Command, args []string) {
		fmt.Println("Subjects:")
		for _, name := range vocabulary() {
			fmt.Printf("  %s\n", name)
		}
		if cfg.FreeTextSubjects {
			fmt.Println("\nFree-text subjects are enabled: any name is accepted.")
		}
	}),
}

var subjectsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a subject to the list",
	Args:  cobra.ExactArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string) {
		name := strings.TrimSpace(args[0])
		if name == "" {
			fmt.Println("Error: subject name must not be empty.")
			return
		}

		if err := subjects.AddSubject(name); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Added subject %q.\n", name)
	}),
}

func init() {
	subjectsCmd.AddCommand(subjectsAddCmd)
}
