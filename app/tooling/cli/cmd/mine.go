package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Mine the next block and wait for the result",
	Run:   mineRun,
}

func init() {
	rootCmd.AddCommand(mineCmd)
}

func mineRun(cmd *cobra.Command, args []string) {
	var resp struct {
		Message string `json:"message"`
		Index   uint64 `json:"index"`
		Proof   uint64 `json:"proof"`
	}

	if err := get("/v1/mine", &resp); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s: block[%d] proof[%d]\n", resp.Message, resp.Index, resp.Proof)
}
