package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// lsCmd represents the ls command
var lsCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "List a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLs,
}

func runLs(cmd *cobra.Command, args []string) error {
	path := "/"
	if len(args) > 0 {
		path = args[0]
	}

	list, err := client.ListFiles(cmd.Context(), path, nil)
	if err != nil {
		return err
	}

	if len(list.Items) == 0 {
		fmt.Printf("%s is empty\n", path)
		return nil
	}

	fmt.Printf("%s:\n", path)
	fmt.Println(strings.Repeat("-", 60))
	for _, item := range list.Items {
		kind := "file"
		if item.IsDir {
			kind = "dir"
		}
		fmt.Printf("%-5s %10s  %s\n", kind, formatSize(item.Size), item.Name)
	}
	if list.NextPageToken != "" {
		fmt.Printf("\nMore entries available (next page token: %s)\n", list.NextPageToken)
	}
	return nil
}

// mkdirCmd represents the mkdir command
var mkdirCmd = &cobra.Command{
	Use:   "mkdir <path>",
	Short: "Create a directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runMkdir,
}

func runMkdir(cmd *cobra.Command, args []string) error {
	if err := client.CreateDirectory(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Printf("Created %s\n", args[0])
	return nil
}

// rmCmd represents the rm command
var rmCmd = &cobra.Command{
	Use:   "rm <path>...",
	Short: "Delete files or directories",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRm,
}

func runRm(cmd *cobra.Command, args []string) error {
	if err := client.Delete(cmd.Context(), args); err != nil {
		return err
	}
	fmt.Printf("Deleted %d item(s)\n", len(args))
	return nil
}
