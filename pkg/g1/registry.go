package g1

import (
	"sync"
	"sync/atomic"
)

// LocoHandle identifies one live locomotion client. Zero is the null handle.
type LocoHandle uintptr

// ArmHandle identifies one live arm-action client. Zero is the null handle.
type ArmHandle uintptr

// HandleKind names the two handle variants in logs and metrics.
type HandleKind string

const (
	KindLoco HandleKind = "loco"
	KindArm  HandleKind = "arm"
)

type locoState struct {
	client LocoClient
	// continuousMove is set by SwitchMoveMode and read by every Move on the
	// same handle.
	continuousMove atomic.Bool
}

type armState struct {
	client ArmActionClient
}

// registry maps handle ids to client state. Ids are never reused within a
// process, so a destroyed handle resolves to nothing instead of to a newer
// client.
type registry[T any] struct {
	mu   sync.Mutex
	next uintptr
	reg  map[uintptr]*T
}

func newRegistry[T any]() *registry[T] {
	return &registry[T]{next: 1, reg: make(map[uintptr]*T)}
}

func (r *registry[T]) put(v *T) uintptr {
	r.mu.Lock()
	h := r.next
	r.next++
	r.reg[h] = v
	r.mu.Unlock()
	return h
}

func (r *registry[T]) get(h uintptr) (*T, bool) {
	if h == 0 {
		return nil, false
	}
	r.mu.Lock()
	v, ok := r.reg[h]
	r.mu.Unlock()
	return v, ok
}

func (r *registry[T]) take(h uintptr) (*T, bool) {
	if h == 0 {
		return nil, false
	}
	r.mu.Lock()
	v, ok := r.reg[h]
	delete(r.reg, h)
	r.mu.Unlock()
	return v, ok
}

func (r *registry[T]) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.reg)
}
