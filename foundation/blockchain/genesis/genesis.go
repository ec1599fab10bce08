// Package genesis maintains access to the genesis configuration.
package genesis

import (
	"encoding/json"
	"os"
	"time"
)

// Genesis represents the fixed configuration the chain starts from. The
// difficulty never adjusts while the node runs.
type Genesis struct {
	Date         time.Time `json:"date"`
	ChainID      uint16    `json:"chain_id"`      // An unique id for this running instance.
	Difficulty   int       `json:"difficulty"`    // Number of leading zero hex characters to solve the work problem.
	MiningReward float64   `json:"mining_reward"` // Reward for mining a block.
	RewardSender string    `json:"reward_sender"` // Sender stamped on reward transactions.
}

// Default returns the reference configuration used when no genesis file
// is provided.
func Default() Genesis {
	return Genesis{
		Date:         time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC),
		ChainID:      1,
		Difficulty:   4,
		MiningReward: 1,
		RewardSender: "0",
	}
}

// Load opens and consumes the genesis file. A missing file falls back to
// the default configuration.
func Load(path string) (Genesis, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Genesis{}, err
	}

	var genesis Genesis
	if err := json.Unmarshal(content, &genesis); err != nil {
		return Genesis{}, err
	}

	return genesis, nil
}
