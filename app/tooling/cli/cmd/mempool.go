package cmd

import (
	"fmt"
	"log"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var mempoolCmd = &cobra.Command{
	Use:   "mempool",
	Short: "Display the node's uncommitted transactions",
	Run:   mempoolRun,
}

func init() {
	rootCmd.AddCommand(mempoolCmd)
}

func mempoolRun(cmd *cobra.Command, args []string) {
	var txs []struct {
		Amount    float64 `json:"amount"`
		Recipient string  `json:"recipient"`
		Sender    string  `json:"sender"`
	}

	if err := get("/v1/tx/uncommitted/list", &txs); err != nil {
		log.Fatal(err)
	}

	data := pterm.TableData{
		{"SENDER", "RECIPIENT", "AMOUNT"},
	}
	for _, tx := range txs {
		data = append(data, []string{tx.Sender, tx.Recipient, fmt.Sprintf("%v", tx.Amount)})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		log.Fatal(err)
	}
}
