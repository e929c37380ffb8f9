package sensor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultInterval is how often a report is sent while reporting is on.
const DefaultInterval = 10 * time.Millisecond

// commandLen is the size of one game command: '{', four bytes, '}'.
const commandLen = 6

// Link speaks the touch sensor protocol over a serial port. The game sends
// {RSET}, {HALT} and {STAT} to reset, stop and start reporting, and
// {<side><area><r|k><value>} to set ratio or sensitivity, which the sensor
// echoes back in parentheses. While reporting, the link sends a report on
// every state change and at least once per Interval.
type Link struct {
	Interval time.Duration

	port      io.ReadWriter
	state     *State
	log       logrus.FieldLogger
	writeMu   sync.Mutex
	reporting atomic.Bool
	reports   atomic.Uint64
}

// NewLink returns a link reporting state over port.
func NewLink(port io.ReadWriter, state *State) *Link {
	return &Link{
		Interval: DefaultInterval,
		port:     port,
		state:    state,
		log:      logrus.StandardLogger(),
	}
}

// SetLogger sets the logger for command traffic and I/O failures.
func (l *Link) SetLogger(log logrus.FieldLogger) {
	l.log = log
}

// Reporting reports whether the game has asked for reports.
func (l *Link) Reporting() bool {
	return l.reporting.Load()
}

// Reports returns the number of reports written so far.
func (l *Link) Reports() uint64 {
	return l.reports.Load()
}

// Run serves the link until ctx is done or the port fails. The read side
// blocks in the port's Read; close the port after Run returns to release
// it.
func (l *Link) Run(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		errc <- l.readCommands()
	}()

	interval := l.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errc:
			return fmt.Errorf("sensor link: read: %w", err)
		case <-l.state.Changed():
		case <-ticker.C:
		}
		if !l.reporting.Load() {
			continue
		}
		if err := l.sendReport(); err != nil {
			return fmt.Errorf("sensor link: write report: %w", err)
		}
	}
}

func (l *Link) sendReport() error {
	r := EncodeReport(l.state.Bits())
	if err := l.write(r[:]); err != nil {
		return err
	}
	l.reports.Add(1)
	return nil
}

func (l *Link) write(b []byte) error {
	l.writeMu.Lock()
	defer l.writeMu.Unlock()
	_, err := l.port.Write(b)
	return err
}

// readCommands reads and handles commands until the port fails.
func (l *Link) readCommands() error {
	var pending []byte
	buf := make([]byte, 64)
	for {
		n, err := l.port.Read(buf)
		pending = append(pending, buf[:n]...)
		pending = l.handleCommands(pending)
		if err != nil {
			if err == io.EOF {
				return io.ErrUnexpectedEOF
			}
			return err
		}
	}
}

// handleCommands consumes every complete command at the front of buf and
// returns what is left. Bytes that cannot start a command are skipped.
func (l *Link) handleCommands(buf []byte) []byte {
	for {
		start := bytes.IndexByte(buf, '{')
		if start < 0 {
			return buf[:0]
		}
		buf = buf[start:]
		if len(buf) < commandLen {
			return buf
		}
		if buf[commandLen-1] != '}' {
			buf = buf[1:]
			continue
		}
		l.handleCommand(buf[1 : commandLen-1])
		buf = buf[commandLen:]
	}
}

func (l *Link) handleCommand(cmd []byte) {
	switch string(cmd) {
	case "RSET":
		l.log.Debug("sensor: reset")
		l.reporting.Store(false)
		return
	case "HALT":
		l.log.Debug("sensor: halt")
		l.reporting.Store(false)
		return
	case "STAT":
		l.log.Debug("sensor: start reporting")
		l.reporting.Store(true)
		return
	}

	switch cmd[2] {
	case 'r', 'k':
		// Ratio and sensitivity settings are acknowledged verbatim.
		resp := []byte{'(', cmd[0], cmd[1], cmd[2], cmd[3], ')'}
		l.log.WithFields(logrus.Fields{"side": string(cmd[0]), "area": cmd[1], "kind": string(cmd[2]), "value": cmd[3]}).Debug("sensor: setting")
		if err := l.write(resp); err != nil {
			l.log.WithError(err).Warn("sensor: write setting ack failed")
		}
	default:
		l.log.WithField("command", fmt.Sprintf("%q", cmd)).Warn("sensor: unknown command")
	}
}
