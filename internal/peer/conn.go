package peer

import (
	"context"
	"net"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/danmuck/chainwire/internal/logging"
	"github.com/danmuck/chainwire/internal/wire"
)

// Stats counts traffic over one connection.
type Stats struct {
	MessagesIn  atomic.Uint64
	MessagesOut atomic.Uint64
}

// Peer drives the wire codec over one net.Conn. Framing failures are
// fatal for the connection; the caller is expected to Close and drop
// the peer.
type Peer struct {
	conn    net.Conn
	cfg     Config
	limiter *rate.Limiter
	log     zerolog.Logger
	stats   Stats
}

// New wraps conn. cfg.Registry and cfg.Network must be set.
func New(conn net.Conn, cfg Config) *Peer {
	var limiter *rate.Limiter
	if cfg.MessagesPerSecond > 0 {
		burst := cfg.MessageBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.MessagesPerSecond), burst)
	}
	return &Peer{
		conn:    conn,
		cfg:     cfg,
		limiter: limiter,
		log: logging.Component("peer").With().
			Str("remote", conn.RemoteAddr().String()).
			Str("network", cfg.Network.String()).
			Logger(),
	}
}

// ReadMessage blocks until one full frame arrives, then dispatches it
// through the registry. The rate limiter bounds how fast a remote peer
// can make us work; ctx cancels the wait.
func (p *Peer) ReadMessage(ctx context.Context) (wire.Message, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}
	if p.cfg.ReadTimeout > 0 {
		if err := p.conn.SetReadDeadline(deadlineFrom(ctx, p.cfg.ReadTimeout)); err != nil {
			return nil, err
		}
	}
	msg, err := p.cfg.Registry.ReadMessage(p.conn, p.cfg.Network, p.cfg.Limits)
	if err != nil {
		p.log.Debug().Err(err).Msg("read message failed")
		return nil, err
	}
	p.stats.MessagesIn.Add(1)
	p.log.Trace().Str("command", msg.Command()).Msg("message in")
	return msg, nil
}

// WriteMessage frames and sends msg.
func (p *Peer) WriteMessage(msg wire.Message) error {
	if p.cfg.WriteTimeout > 0 {
		if err := p.conn.SetWriteDeadline(deadlineFrom(context.Background(), p.cfg.WriteTimeout)); err != nil {
			return err
		}
	}
	if err := wire.EncodeMessage(p.conn, p.cfg.Network, msg, p.cfg.Limits); err != nil {
		p.log.Debug().Err(err).Str("command", msg.Command()).Msg("write message failed")
		return err
	}
	p.stats.MessagesOut.Add(1)
	p.log.Trace().Str("command", msg.Command()).Msg("message out")
	return nil
}

// Stats exposes the connection counters.
func (p *Peer) Stats() *Stats {
	return &p.stats
}

// RemoteAddr reports the other end of the connection.
func (p *Peer) RemoteAddr() net.Addr {
	return p.conn.RemoteAddr()
}

// Close closes the underlying connection, unblocking any pending read.
func (p *Peer) Close() error {
	return p.conn.Close()
}

func deadlineFrom(ctx context.Context, timeout time.Duration) time.Time {
	deadline := time.Now().Add(timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		return d
	}
	return deadline
}
