package main

import (
	"fmt"

	"github.com/spf13/cobra"

	cloudreve "github.com/driveclient/go-cloudreve"
)

var (
	sharePassword string
	shareExpire   int
)

// shareCmd represents the share command
var shareCmd = &cobra.Command{
	Use:   "share <remote path>",
	Short: "Create a share link",
	Args:  cobra.ExactArgs(1),
	RunE:  runShare,
}

func init() {
	shareCmd.Flags().StringVar(&sharePassword, "password", "", "protect the share with a password")
	shareCmd.Flags().IntVar(&shareExpire, "expire", 0, "share lifetime in seconds (0 = no expiry)")
}

func runShare(cmd *cobra.Command, args []string) error {
	share, err := client.CreateShare(cmd.Context(), args[0], &cloudreve.ShareOptions{
		Password: sharePassword,
		Expire:   shareExpire,
	})
	if err != nil {
		return err
	}

	fmt.Println(share.URL)
	if share.IsPrivate {
		fmt.Printf("Password: %s\n", sharePassword)
	}
	return nil
}
