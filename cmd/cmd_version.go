package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the brc20-export client version.
const Version = "v0.1.0"

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show brc20-export version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(Version)
		},
	}
}
