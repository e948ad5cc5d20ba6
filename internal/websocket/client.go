// Listingscope - Short-Term Rental Listing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/listingscope

package websocket

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/tomtom215/listingscope/internal/logging"
	"github.com/tomtom215/listingscope/internal/metrics"
	"github.com/tomtom215/listingscope/internal/models"
	"github.com/tomtom215/listingscope/internal/validation"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	sendBufferSize = 16
)

// clientSeq orders clients so shutdown closes them deterministically.
var clientSeq atomic.Uint64

// SnapshotProvider computes dashboard snapshots for a filter.
// Satisfied by *dashboard.Service.
type SnapshotProvider interface {
	Snapshot(ctx context.Context, f models.Filter) (models.DashboardSnapshot, bool, error)
	PriceBounds() models.PriceRange
}

// Options bounds what a single client may send.
type Options struct {
	// MaxMessageBytes is the largest frame accepted from the client.
	MaxMessageBytes int64

	// FilterUpdatesPerSecond and FilterUpdateBurst configure the token
	// bucket that throttles filter messages.
	FilterUpdatesPerSecond float64
	FilterUpdateBurst      int
}

// DefaultOptions returns the limits used when none are configured.
func DefaultOptions() Options {
	return Options{
		MaxMessageBytes:        4096,
		FilterUpdatesPerSecond: 5,
		FilterUpdateBurst:      10,
	}
}

// Client is a middleman between one websocket connection and the hub.
type Client struct {
	seq      uint64
	id       string
	hub      *Hub
	conn     *websocket.Conn
	provider SnapshotProvider
	limiter  *rate.Limiter
	opts     Options

	send      chan Message
	done      chan struct{}
	closeOnce sync.Once

	ctx    context.Context
	cancel context.CancelFunc
}

// withDefaults fills zero limits from DefaultOptions.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.MaxMessageBytes <= 0 {
		o.MaxMessageBytes = def.MaxMessageBytes
	}
	if o.FilterUpdatesPerSecond <= 0 {
		o.FilterUpdatesPerSecond = def.FilterUpdatesPerSecond
	}
	if o.FilterUpdateBurst <= 0 {
		o.FilterUpdateBurst = def.FilterUpdateBurst
	}
	return o
}

// NewClient creates a Client for an upgraded connection. Zero limits in opts
// fall back to DefaultOptions.
func NewClient(hub *Hub, conn *websocket.Conn, provider SnapshotProvider, opts Options) *Client {
	opts = opts.withDefaults()
	id := uuid.New().String()
	ctx, cancel := context.WithCancel(logging.ContextWithClientID(context.Background(), id))
	return &Client{
		seq:      clientSeq.Add(1),
		id:       id,
		hub:      hub,
		conn:     conn,
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(opts.FilterUpdatesPerSecond), opts.FilterUpdateBurst),
		opts:     opts,
		send:     make(chan Message, sendBufferSize),
		done:     make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// ID returns the client's unique identifier.
func (c *Client) ID() string {
	return c.id
}

// close stops the write pump and cancels in-flight snapshot work. Safe to
// call more than once.
func (c *Client) close() {
	c.closeOnce.Do(func() {
		c.cancel()
		close(c.done)
	})
}

// Close releases a client that never reached the hub, e.g. when registration
// timed out. Registered clients are closed by the hub.
func (c *Client) Close() {
	c.close()
}

// enqueue hands a frame to the write pump, dropping it if the client is
// closed or too slow to keep up.
func (c *Client) enqueue(msg Message) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.send <- msg:
		metrics.RecordWebSocketMessage(msg.Type)
		return true
	case <-c.done:
		return false
	default:
		logging.Ctx(c.ctx).Warn().Str("message_type", msg.Type).Msg("websocket send buffer full, dropping message")
		return false
	}
}

// handleMessage processes one frame from the client.
func (c *Client) handleMessage(raw []byte) {
	var in inboundMessage
	if err := json.Unmarshal(raw, &in); err != nil {
		c.enqueue(errorMessage(ErrCodeInvalidMessage, "message is not valid JSON"))
		return
	}

	switch in.Type {
	case MessageTypePing:
		c.enqueue(Message{Type: MessageTypePong})
	case MessageTypeFilter:
		c.handleFilter(in.Data)
	case "":
		c.enqueue(errorMessage(ErrCodeInvalidMessage, "message type is required"))
	default:
		c.enqueue(errorMessage(ErrCodeUnknownMessageType, "unknown message type: "+in.Type))
	}
}

// handleFilter answers a filter update with a snapshot. Updates over the
// client's rate are rejected without computing anything.
func (c *Client) handleFilter(data json.RawMessage) {
	if !c.limiter.Allow() {
		c.enqueue(errorMessage(ErrCodeRateLimited, "too many filter updates"))
		return
	}

	var req validation.FilterRequest
	if len(data) > 0 {
		if err := json.Unmarshal(data, &req); err != nil {
			c.enqueue(errorMessage(ErrCodeInvalidMessage, "filter data is malformed"))
			return
		}
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		c.enqueue(errorMessage(ErrCodeValidation, verr.ToAPIError().Message))
		return
	}

	snap, err := c.snapshot(req.ToFilter(c.provider.PriceBounds()))
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		logging.Ctx(c.ctx).Error().Err(err).Msg("websocket snapshot failed")
		c.enqueue(errorMessage(ErrCodeInternal, "failed to compute snapshot"))
		return
	}
	c.enqueue(Message{Type: MessageTypeSnapshot, Data: snap})
}

// snapshot runs on the read pump goroutine, where a panic would otherwise
// take down the process.
func (c *Client) snapshot(f models.Filter) (snap models.DashboardSnapshot, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("snapshot panicked: %v", r)
		}
	}()
	snap, _, err = c.provider.Snapshot(c.ctx, f)
	return snap, err
}

// readPump pumps frames from the websocket connection to handleMessage.
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.Unregister <- c:
		case <-c.done:
		}
		c.close()
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(c.opts.MaxMessageBytes)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logging.Ctx(c.ctx).Error().Err(err).Msg("failed to set read deadline")
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Ctx(c.ctx).Warn().Err(err).Msg("unexpected websocket close")
			}
			return
		}
		c.handleMessage(raw)
	}
}

// writePump pumps frames from the send buffer to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			payload, err := json.Marshal(msg)
			if err != nil {
				logging.Ctx(c.ctx).Error().Err(err).Str("message_type", msg.Type).Msg("failed to encode websocket message")
				continue
			}
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				logging.Ctx(c.ctx).Debug().Err(err).Msg("websocket write failed")
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
				time.Now().Add(writeWait))
			return
		}
	}
}

// Start begins reading and writing for the client.
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}
