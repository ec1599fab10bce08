package database

// Tx represents a transfer between two parties. Transactions carry no
// identity or signature and duplicates are permitted. The fields are
// declared in sorted JSON key order since the declaration order is the
// canonical hashing order.
type Tx struct {
	Amount    float64 `json:"amount"`
	Recipient string  `json:"recipient"`
	Sender    string  `json:"sender"`
}

// NewTx constructs a new transaction. The values are accepted as given,
// there is no balance or double spend checking.
func NewTx(sender string, recipient string, amount float64) Tx {
	return Tx{
		Amount:    amount,
		Recipient: recipient,
		Sender:    sender,
	}
}
