package audio

import (
	"context"
	"sync"
)

type request int

const (
	requestEat request = iota
	requestGameOver
)

// Dispatcher forwards effect requests to a worker goroutine so the game
// loop never waits on the audio backend.
type Dispatcher struct {
	next     Effects
	requests chan request
	stop     chan struct{}
	done     chan struct{}
	once     sync.Once
}

// Async starts a dispatcher in front of next. Requests beyond buffer pending
// ones are dropped. The worker exits when ctx is cancelled or Close is called.
func Async(ctx context.Context, next Effects, buffer int) *Dispatcher {
	d := &Dispatcher{
		next:     next,
		requests: make(chan request, max(buffer, 1)),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go d.run(ctx)
	return d
}

func (d *Dispatcher) run(ctx context.Context) {
	defer close(d.done)
	for {
		select {
		case <-ctx.Done():
			return
		case <-d.stop:
			d.drain()
			return
		case r := <-d.requests:
			d.play(r)
		}
	}
}

func (d *Dispatcher) drain() {
	for {
		select {
		case r := <-d.requests:
			d.play(r)
		default:
			return
		}
	}
}

func (d *Dispatcher) play(r request) {
	switch r {
	case requestEat:
		d.next.PlayEat()
	case requestGameOver:
		d.next.PlayGameOver()
	}
}

func (d *Dispatcher) send(r request) {
	select {
	case <-d.done:
		return
	default:
	}
	select {
	case d.requests <- r:
	default:
		// Backend is behind; drop rather than stall the tick
	}
}

// PlayEat queues the eat effect.
func (d *Dispatcher) PlayEat() { d.send(requestEat) }

// PlayGameOver queues the game over effect.
func (d *Dispatcher) PlayGameOver() { d.send(requestGameOver) }

// Close stops the worker after it drains queued requests and waits for it.
func (d *Dispatcher) Close() {
	d.once.Do(func() { close(d.stop) })
	<-d.done
}
