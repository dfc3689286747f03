// Package network provides the client side of the node to node protocol.
// Nodes exchange JSON documents over HTTP.
package network

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ardanlabs/ledger/foundation/blockchain/database"
	"github.com/ardanlabs/ledger/foundation/blockchain/peer"
)

// baseURL is the format of the root url for a node.
const baseURL = "http://%s"

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 64 << 20

// Client performs requests against other nodes.
type Client struct {
	client http.Client
}

// NewClient constructs a client where each request must complete within
// the specified timeout. A zero timeout means no timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		client: http.Client{
			Timeout: timeout,
		},
	}
}

// FetchChain asks the peer for its full chain. A response whose reported
// length doesn't match the blocks it carries is treated as malformed.
func (c *Client) FetchChain(ctx context.Context, pr peer.Peer) (database.ChainData, error) {
	url := fmt.Sprintf("%s/chain", fmt.Sprintf(baseURL, pr.Host))

	var cd database.ChainData
	if err := c.send(ctx, http.MethodGet, url, nil, &cd); err != nil {
		return database.ChainData{}, fmt.Errorf("%s: %w", pr.Host, err)
	}

	if err := cd.Validate(); err != nil {
		return database.ChainData{}, fmt.Errorf("%s: malformed chain: %w", pr.Host, err)
	}

	return cd, nil
}

// Call sends a request to the node at the specified url and returns the raw
// JSON response. It's used by tooling that only displays the response.
func (c *Client) Call(ctx context.Context, method string, url string, dataSend any) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.send(ctx, method, url, dataSend, &raw); err != nil {
		return nil, err
	}

	return raw, nil
}

// =============================================================================

// send is a helper function to send an HTTP request to a node.
func (c *Client) send(ctx context.Context, method string, url string, dataSend any, dataRecv any) error {
	var body io.Reader
	if dataSend != nil {
		data, err := json.Marshal(dataSend)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return err
	}
	if dataSend != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if err != nil {
			return err
		}
		return fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if resp.StatusCode == http.StatusNoContent || dataRecv == nil {
		return nil
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(dataRecv); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}
