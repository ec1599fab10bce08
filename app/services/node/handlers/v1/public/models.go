package public

import (
	"github.com/powlabs/ledger/business/sys/validate"
	"github.com/powlabs/ledger/foundation/blockchain/database"
)

// submitTx represents the transaction submitted by a client. The amount is
// a pointer so a zero amount can be told apart from a missing field.
type submitTx struct {
	Sender    string   `json:"sender" validate:"required"`
	Recipient string   `json:"recipient" validate:"required"`
	Amount    *float64 `json:"amount" validate:"required"`
}

// Validate checks the data in the model is considered clean.
func (tx submitTx) Validate() error {
	if err := validate.Check(tx); err != nil {
		return err
	}
	return nil
}

// =============================================================================

// chain represents the response with the full chain and its length.
type chain struct {
	Chain  []database.Block `json:"chain"`
	Length int              `json:"length"`
}

// minedBlock represents the response after a block has been forged.
type minedBlock struct {
	Message      string        `json:"message"`
	Index        uint64        `json:"index"`
	Transactions []database.Tx `json:"transactions"`
	Proof        uint64        `json:"proof"`
	PrevHash     string        `json:"previous_hash"`
}
