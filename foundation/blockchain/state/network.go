package state

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/powlabs/ledger/foundation/blockchain/database"
	"github.com/powlabs/ledger/foundation/blockchain/peer"
)

const baseURL = "http://%s/v1/node"

// fetchTimeout bounds how long a single peer may stall resolution. A slow
// or unreachable peer must not hold up evaluation of the others.
const fetchTimeout = 10 * time.Second

// PeerChain is a peer's report of its full chain and its length.
type PeerChain struct {
	Chain  []database.Block `json:"chain"`
	Length int              `json:"length"`
}

// Fetcher retrieves the chain of a single peer. The resolution algorithm
// takes the fetch as a capability so it can be tested without sockets.
type Fetcher func(pr peer.Peer) (PeerChain, error)

// NewHTTPFetcher constructs a Fetcher that queries a peer's private chain
// endpoint over HTTP.
func NewHTTPFetcher(timeout time.Duration) Fetcher {
	client := http.Client{
		Timeout: timeout,
	}

	return func(pr peer.Peer) (PeerChain, error) {
		url := fmt.Sprintf("%s/chain/list", fmt.Sprintf(baseURL, pr.Host))

		var peerChain PeerChain
		if err := send(&client, http.MethodGet, url, nil, &peerChain); err != nil {
			return PeerChain{}, err
		}

		return peerChain, nil
	}
}

// =============================================================================

// send is a helper function to send an HTTP request to a node.
func send(client *http.Client, method string, url string, dataSend any, dataRecv any) error {
	var req *http.Request

	switch {
	case dataSend != nil:
		data, err := json.Marshal(dataSend)
		if err != nil {
			return err
		}
		req, err = http.NewRequest(method, url, bytes.NewReader(data))
		if err != nil {
			return err
		}

	default:
		var err error
		req, err = http.NewRequest(method, url, nil)
		if err != nil {
			return err
		}
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if resp.StatusCode != http.StatusOK {
		msg, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		return errors.New(string(msg))
	}

	if dataRecv != nil {
		if err := json.NewDecoder(resp.Body).Decode(dataRecv); err != nil {
			return err
		}
	}

	return nil
}
