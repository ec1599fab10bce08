package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Run consensus against the node's known peers",
	Run:   resolveRun,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func resolveRun(cmd *cobra.Command, args []string) {
	var resp struct {
		Message string `json:"message"`
	}

	if err := getFrom(privateURL, "/v1/node/resolve", &resp); err != nil {
		log.Fatal(err)
	}

	fmt.Println(resp.Message)
}
