package cmd

import (
	"fmt"
	"log"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Display the node's full chain",
	Run:   chainRun,
}

func init() {
	rootCmd.AddCommand(chainCmd)
}

func chainRun(cmd *cobra.Command, args []string) {
	var resp struct {
		Chain []struct {
			Index        uint64  `json:"index"`
			PrevHash     string  `json:"previous_hash"`
			Proof        uint64  `json:"proof"`
			TimeStamp    float64 `json:"timestamp"`
			Transactions []struct {
				Amount    float64 `json:"amount"`
				Recipient string  `json:"recipient"`
				Sender    string  `json:"sender"`
			} `json:"transactions"`
		} `json:"chain"`
		Length int `json:"length"`
	}

	if err := get("/v1/chain/list", &resp); err != nil {
		log.Fatal(err)
	}

	data := pterm.TableData{
		{"INDEX", "PROOF", "TRANS", "PREVIOUS HASH"},
	}
	for _, block := range resp.Chain {
		prevHash := block.PrevHash
		if len(prevHash) > 16 {
			prevHash = prevHash[:16] + "..."
		}
		data = append(data, []string{
			fmt.Sprintf("%d", block.Index),
			fmt.Sprintf("%d", block.Proof),
			fmt.Sprintf("%d", len(block.Transactions)),
			prevHash,
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		log.Fatal(err)
	}

	pterm.Info.Printfln("chain length: %d", resp.Length)
}
