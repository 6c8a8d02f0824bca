package realtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackc/pgx/v5"
)

// opPollInterval is how often the wait for a notification is interrupted
// so queued LISTEN/UNLISTEN ops get applied.
const opPollInterval = 100 * time.Millisecond

// Redial backoff bounds after the LISTEN connection drops.
const (
	redialInitialBackoff = time.Second
	redialMaxBackoff     = 30 * time.Second
)

// chanOp is a LISTEN or UNLISTEN statement queued for the receive loop.
// Only that loop touches the pgx connection; an Exec issued while
// WaitForNotification is in flight trips pgx's conn-busy guard.
type chanOp struct {
	sql  string
	done chan error
}

// NotifyListener owns the dedicated Postgres connection carrying
// pg_notify traffic for this process. Payloads a Pusher sends from any
// process land here and are handed to the local ConnectionManager,
// which fans them out to the user:, group: and broadcast WebSocket
// subscribers it tracks. Channels are listened to on demand: the
// manager subscribes the first time a client needs one and unsubscribes
// when the last client leaves.
type NotifyListener struct {
	connString string
	manager    *ConnectionManager
	logger     *slog.Logger

	conn   *pgx.Conn
	connMu sync.Mutex

	// active holds the channel names currently under LISTEN. The redial
	// path replays them on the fresh connection.
	active   map[string]bool
	activeMu sync.RWMutex

	ops     chan chanOp
	started atomic.Bool

	stopLoop context.CancelFunc
	loopDone chan struct{}
}

// NewNotifyListener creates a listener; Start opens the connection.
func NewNotifyListener(connString string, manager *ConnectionManager) *NotifyListener {
	return &NotifyListener{
		connString: connString,
		manager:    manager,
		logger:     slog.With("component", "notify-listener"),
		active:     make(map[string]bool),
		ops:        make(chan chanOp, 16),
	}
}

// Start opens the dedicated connection and launches the receive loop.
func (l *NotifyListener) Start(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.connString)
	if err != nil {
		return fmt.Errorf("notify listener connect: %w", err)
	}

	l.connMu.Lock()
	l.conn = conn
	l.connMu.Unlock()
	l.started.Store(true)

	// The loop gets its own cancel so Stop can end it before the
	// connection is closed underneath it.
	loopCtx, cancel := context.WithCancel(ctx)
	l.stopLoop = cancel
	l.loopDone = make(chan struct{})
	go func() {
		defer close(l.loopDone)
		l.receiveLoop(loopCtx)
	}()

	l.logger.Info("notify listener started")
	return nil
}

// Subscribe puts a channel under LISTEN. Idempotent per channel; the
// statement runs on the receive loop and this call waits for its result.
func (l *NotifyListener) Subscribe(ctx context.Context, channel string) error {
	l.activeMu.Lock()
	listening := l.active[channel]
	l.activeMu.Unlock()
	if listening {
		return nil
	}
	if !l.started.Load() {
		return fmt.Errorf("notify listener not started")
	}

	quoted := pgx.Identifier{channel}.Sanitize()
	if err := l.enqueueOp(ctx, "LISTEN "+quoted); err != nil {
		return fmt.Errorf("LISTEN %s: %w", quoted, err)
	}

	l.activeMu.Lock()
	l.active[channel] = true
	l.activeMu.Unlock()
	l.logger.Debug("listening on channel", "channel", channel)
	return nil
}

// Unsubscribe drops the LISTEN for a channel. A channel that was never
// subscribed is a no-op.
func (l *NotifyListener) Unsubscribe(ctx context.Context, channel string) error {
	l.activeMu.Lock()
	listening := l.active[channel]
	l.activeMu.Unlock()
	if !listening || !l.started.Load() {
		return nil
	}

	quoted := pgx.Identifier{channel}.Sanitize()
	if err := l.enqueueOp(ctx, "UNLISTEN "+quoted); err != nil {
		return fmt.Errorf("UNLISTEN %s: %w", quoted, err)
	}

	l.activeMu.Lock()
	delete(l.active, channel)
	l.activeMu.Unlock()
	return nil
}

// enqueueOp hands one statement to the receive loop and waits for it.
func (l *NotifyListener) enqueueOp(ctx context.Context, sql string) error {
	op := chanOp{sql: sql, done: make(chan error, 1)}
	select {
	case l.ops <- op:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-op.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// receiveLoop alternates between applying queued channel ops and
// waiting for the next notification. It is the only goroutine allowed
// on the pgx connection.
func (l *NotifyListener) receiveLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		l.applyPendingOps(ctx)

		l.connMu.Lock()
		conn := l.conn
		l.connMu.Unlock()
		if conn == nil {
			l.redial(ctx)
			continue
		}

		// The short deadline bounds how stale the ops queue can get
		// while no notifications arrive.
		waitCtx, cancel := context.WithTimeout(ctx, opPollInterval)
		notification, err := conn.WaitForNotification(waitCtx)
		cancel()

		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if waitCtx.Err() != nil {
				continue
			}
			l.logger.Error("notification wait failed", "error", err)
			l.redial(ctx)
			continue
		}

		l.manager.Broadcast(notification.Channel, []byte(notification.Payload))
	}
}

// applyPendingOps drains the ops queue onto the connection.
func (l *NotifyListener) applyPendingOps(ctx context.Context) {
	for {
		select {
		case op := <-l.ops:
			l.connMu.Lock()
			conn := l.conn
			l.connMu.Unlock()
			if conn == nil {
				op.done <- fmt.Errorf("notify listener not connected")
				continue
			}
			_, err := conn.Exec(ctx, op.sql)
			op.done <- err
		default:
			return
		}
	}
}

// redial replaces a dead connection, backing off between attempts, and
// replays every active LISTEN so subscribers keep receiving without
// re-subscribing.
func (l *NotifyListener) redial(ctx context.Context) {
	l.connMu.Lock()
	defer l.connMu.Unlock()

	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}

	backoff := redialInitialBackoff
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		conn, err := pgx.Connect(ctx, l.connString)
		if err != nil {
			l.logger.Error("notify listener redial failed", "error", err, "backoff", backoff)
			backoff = min(backoff*2, redialMaxBackoff)
			continue
		}
		l.conn = conn

		l.activeMu.RLock()
		for channel := range l.active {
			quoted := pgx.Identifier{channel}.Sanitize()
			if _, err := conn.Exec(ctx, "LISTEN "+quoted); err != nil {
				l.logger.Error("failed to replay LISTEN after redial", "channel", channel, "error", err)
			}
		}
		l.activeMu.RUnlock()

		l.logger.Info("notify listener reconnected")
		return
	}
}

// Stop ends the receive loop, waits for it, then closes the connection.
// Closing first would race WaitForNotification.
func (l *NotifyListener) Stop(ctx context.Context) {
	l.started.Store(false)

	if l.stopLoop != nil {
		l.stopLoop()
	}
	if l.loopDone != nil {
		<-l.loopDone
	}

	l.connMu.Lock()
	defer l.connMu.Unlock()
	if l.conn != nil {
		_ = l.conn.Close(ctx)
		l.conn = nil
	}
}
