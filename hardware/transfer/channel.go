// This file is part of cvideo.
//
// cvideo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// cvideo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with cvideo.  If not, see <https://www.gnu.org/licenses/>.

package transfer

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Element is the type of a single transfer unit.
type Element interface {
	~uint8 | ~uint32
}

// Config is the configuration of a Channel.
type Config struct {
	// description of the destination of the transfer
	Sink string

	// description of the condition that paces the transfer
	Trigger string

	// the default number of elements in a transfer
	Count int
}

func (cfg Config) String() string {
	return fmt.Sprintf("%s <- %s (%d)", cfg.Sink, cfg.Trigger, cfg.Count)
}

// Channel is the contract of a block transfer channel.
type Channel[E Element] interface {
	Configure(Config)

	// SetCount changes the default number of elements in a transfer
	SetCount(int)

	// Start a transfer of count elements from src. A count of zero or less
	// will use the default count of the configuration. The transfer is
	// fire-and-forget: the completion handler is called when it finishes
	Start(src []E, count int)

	// OnComplete sets the completion handler
	OnComplete(func())

	// Acknowledge clears the channel's interrupt flag
	Acknowledge()
}

// DMAChannel is the simulated implementation of the Channel interface.
type DMAChannel[E Element] struct {
	name string

	// protects the channel registers. the lock is never held across a call
	// to the completion handler
	crit    sync.Mutex
	cfg     Config
	pending []E
	armed   bool
	handler func()

	irq atomic.Bool

	starts      atomic.Uint64
	completions atomic.Uint64
}

func newDMAChannel[E Element](name string) *DMAChannel[E] {
	return &DMAChannel[E]{name: name}
}

func (ch *DMAChannel[E]) String() string {
	return fmt.Sprintf("%s: %s", ch.name, ch.Config())
}

// Configure implements the Channel interface.
func (ch *DMAChannel[E]) Configure(cfg Config) {
	ch.crit.Lock()
	defer ch.crit.Unlock()
	ch.cfg = cfg
}

// Config returns a copy of the current configuration.
func (ch *DMAChannel[E]) Config() Config {
	ch.crit.Lock()
	defer ch.crit.Unlock()
	return ch.cfg
}

// SetCount implements the Channel interface.
func (ch *DMAChannel[E]) SetCount(n int) {
	ch.crit.Lock()
	defer ch.crit.Unlock()
	ch.cfg.Count = n
}

// Start implements the Channel interface. A transfer that has been started but
// not yet consumed is replaced.
func (ch *DMAChannel[E]) Start(src []E, count int) {
	ch.crit.Lock()
	defer ch.crit.Unlock()

	if count <= 0 {
		count = ch.cfg.Count
	}
	count = min(count, len(src))

	ch.pending = src[:count]
	ch.armed = true
	ch.starts.Add(1)
}

// OnComplete implements the Channel interface.
func (ch *DMAChannel[E]) OnComplete(f func()) {
	ch.crit.Lock()
	defer ch.crit.Unlock()
	ch.handler = f
}

// Acknowledge implements the Channel interface.
func (ch *DMAChannel[E]) Acknowledge() {
	ch.irq.Store(false)
}

// Busy returns true if a transfer has been started and not yet consumed.
func (ch *DMAChannel[E]) Busy() bool {
	ch.crit.Lock()
	defer ch.crit.Unlock()
	return ch.armed
}

// Starts returns the number of transfers started on the channel.
func (ch *DMAChannel[E]) Starts() uint64 {
	return ch.starts.Load()
}

// Completions returns the number of transfers completed by the channel.
func (ch *DMAChannel[E]) Completions() uint64 {
	return ch.completions.Load()
}

// take the pending transfer. returns false if the channel is idle
func (ch *DMAChannel[E]) take() ([]E, bool) {
	ch.crit.Lock()
	defer ch.crit.Unlock()
	if !ch.armed {
		return nil, false
	}
	p := ch.pending
	ch.pending = nil
	ch.armed = false
	return p, true
}

// complete raises the interrupt flag and calls the completion handler. if the
// handler does not acknowledge the interrupt then the handler is called a
// second time and the function returns true
func (ch *DMAChannel[E]) complete() bool {
	ch.completions.Add(1)

	ch.crit.Lock()
	h := ch.handler
	ch.crit.Unlock()

	if h == nil {
		return false
	}

	ch.irq.Store(true)
	h()
	if !ch.irq.Load() {
		return false
	}

	// the flag is cleared unconditionally after the repeat. a handler that
	// never acknowledges would otherwise stall the engine
	h()
	ch.irq.Store(false)

	return true
}
