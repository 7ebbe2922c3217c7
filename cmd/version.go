package cmd

import (
	"fmt"

	"codepack/pkg/version"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print codepack version information",
	Run: func(cmd *cobra.Command, args []string) {
		v := version.Get()
		if short, _ := cmd.Flags().GetBool("short"); short {
			fmt.Println(v.Version)
			return
		}
		fmt.Println(v.String())
	},
}

func init() {
	versionCmd.Flags().BoolP("short", "s", false, "print the version number only")
	RootCmd.AddCommand(versionCmd)
}
