// Package private maintains the group of handlers for node to node access.
package private

import (
	"context"
	"net/http"

	"github.com/powlabs/ledger/business/sys/validate"
	v1 "github.com/powlabs/ledger/business/web/v1"
	"github.com/powlabs/ledger/foundation/blockchain/database"
	"github.com/powlabs/ledger/foundation/blockchain/peer"
	"github.com/powlabs/ledger/foundation/blockchain/state"
	"github.com/powlabs/ledger/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of node to node endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
}

// registerPeers represents the set of node addresses to register.
type registerPeers struct {
	Nodes []string `json:"nodes" validate:"required,min=1"`
}

// Validate checks the data in the model is considered clean.
func (rp registerPeers) Validate() error {
	if err := validate.Check(rp); err != nil {
		return err
	}
	return nil
}

// =============================================================================

// Status returns the current status of the node.
func (h Handlers) Status(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	latestBlock, err := h.State.RetrieveLatestBlock()
	if err != nil {
		return err
	}

	status := struct {
		LatestBlockHash  string      `json:"latest_block_hash"`
		LatestBlockIndex uint64      `json:"latest_block_index"`
		KnownPeers       []peer.Peer `json:"known_peers"`
	}{
		LatestBlockHash:  latestBlock.Hash(),
		LatestBlockIndex: latestBlock.Index,
		KnownPeers:       h.State.RetrieveKnownPeers(),
	}

	return web.Respond(ctx, w, status, http.StatusOK)
}

// Chain returns the full chain and its length for peer consumption.
func (h Handlers) Chain(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	blocks, length := h.State.RetrieveChain()

	resp := struct {
		Chain  []database.Block `json:"chain"`
		Length int              `json:"length"`
	}{
		Chain:  blocks,
		Length: length,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// RegisterPeers adds new peer addresses to the known peer set.
func (h Handlers) RegisterPeers(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var rp registerPeers
	if err := web.Decode(r, &rp); err != nil {
		return err
	}

	for _, address := range rp.Nodes {
		added, err := h.State.AddKnownPeer(address)
		if err != nil {
			return v1.NewRequestError(err, http.StatusBadRequest)
		}
		h.Log.Infow("register peer", "traceid", v.TraceID, "address", address, "added", added)
	}

	resp := struct {
		Message    string      `json:"message"`
		TotalNodes []peer.Peer `json:"total_nodes"`
	}{
		Message:    "New nodes have been added",
		TotalNodes: h.State.RetrieveKnownPeers(),
	}

	return web.Respond(ctx, w, resp, http.StatusCreated)
}

// Resolve runs the longest chain consensus algorithm against the known
// peers and reports whether the local chain was replaced.
func (h Handlers) Resolve(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	replaced := h.State.ResolveConflicts()

	blocks, _ := h.State.RetrieveChain()

	message := "Our chain was authoritative"
	if replaced {
		message = "Our chain was replaced"
	}

	resp := struct {
		Message string           `json:"message"`
		Chain   []database.Block `json:"chain"`
	}{
		Message: message,
		Chain:   blocks,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}
