// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package client generates deterministic synthetic inputs. Each client is a
// purely sequential producer seeded by its own id; concurrency comes from
// running distinct clients on distinct tasks.
package client

import (
	"math/rand"

	"github.com/Lama2323/para/pkg/mathutil"
	"github.com/Lama2323/para/pkg/models"
)

// Client produces the inputs of one synthetic player: ticks 0..numInputs-1
// with an action drawn uniformly from the four movement kinds. The generator
// is seeded by the client id, so a client's full sequence is reproducible.
type Client struct {
	clientID  int
	matchID   int
	playerID  int
	numInputs int

	cursor int
	rng    *rand.Rand
}

func NewClient(clientID, matchID, playerID, numInputs int) *Client {
	return &Client{
		clientID:  clientID,
		matchID:   matchID,
		playerID:  playerID,
		numInputs: numInputs,
		rng:       rand.New(rand.NewSource(int64(clientID))),
	}
}

// AppendBatch appends up to n next inputs to dst and advances the cursor.
// Returns dst so callers can reuse pooled buffers.
func (c *Client) AppendBatch(dst []models.Input, n int) []models.Input {
	end := mathutil.Min(c.cursor+n, c.numInputs)
	for tick := c.cursor; tick < end; tick++ {
		dst = append(dst, models.Input{
			MatchID:  c.matchID,
			PlayerID: c.playerID,
			TickID:   tick,
			Action:   models.Action(c.rng.Intn(models.NumActions)),
		})
	}
	c.cursor = end
	return dst
}

// GenerateBatch returns the next min(n, remaining) inputs.
func (c *Client) GenerateBatch(n int) []models.Input {
	return c.AppendBatch(make([]models.Input, 0, mathutil.Min(n, c.Remaining())), n)
}

// IsFinished reports whether the client has produced all its inputs.
func (c *Client) IsFinished() bool {
	return c.cursor >= c.numInputs
}

// Remaining returns how many inputs the client has left to produce.
func (c *Client) Remaining() int {
	return c.numInputs - c.cursor
}

func (c *Client) ClientID() int { return c.clientID }
func (c *Client) MatchID() int  { return c.matchID }
func (c *Client) PlayerID() int { return c.playerID }

// NumInputs returns the total number of inputs this client will produce.
func (c *Client) NumInputs() int { return c.numInputs }

// Manager owns all clients of a simulation. Clients are laid out two per
// match: client i plays player i%2 in match (i/2)%numMatches.
type Manager struct {
	clients []*Client
}

func NewManager(numClients, numMatches, inputsPerClient int) *Manager {
	m := &Manager{clients: make([]*Client, 0, numClients)}
	for i := 0; i < numClients; i++ {
		matchID := (i / 2) % numMatches
		playerID := i % 2
		m.clients = append(m.clients, NewClient(i, matchID, playerID, inputsPerClient))
	}
	return m
}

// Client returns the client at index i, or nil when out of range.
func (m *Manager) Client(i int) *Client {
	if i < 0 || i >= len(m.clients) {
		return nil
	}
	return m.clients[i]
}

// Clients returns the backing client list.
func (m *Manager) Clients() []*Client {
	return m.clients
}

func (m *Manager) NumClients() int {
	return len(m.clients)
}

// TotalInputs returns the number of inputs all clients will produce in total.
func (m *Manager) TotalInputs() int {
	var sum int
	for _, c := range m.clients {
		sum += c.NumInputs()
	}
	return sum
}

// AllInputs drains every client to exhaustion and returns the inputs in
// client order. Used by the sequential baseline; it advances the cursors, so
// use a fresh manager per run.
func (m *Manager) AllInputs() []models.Input {
	out := make([]models.Input, 0, m.TotalInputs())
	for _, c := range m.clients {
		out = c.AppendBatch(out, c.Remaining())
	}
	return out
}
