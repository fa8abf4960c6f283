package ioc

import (
	"errors"

	"github.com/google/uuid"
)

// Test abstractions. Every implementation carries a random ID so identity
// can be told apart across resolutions.

type alpha interface {
	ID() uuid.UUID
}

type beta interface {
	ID() uuid.UUID
	Alpha() alpha
}

type box[T any] interface {
	ID() uuid.UUID
	Content() T
}

type alphaImpl struct {
	id uuid.UUID
}

func newAlpha() *alphaImpl {
	return &alphaImpl{id: uuid.New()}
}

func (a *alphaImpl) ID() uuid.UUID { return a.id }

// decoratedAlpha wraps another alpha registered under the same key.
type decoratedAlpha struct {
	id    uuid.UUID
	inner alpha
}

func newDecoratedAlpha(inner alpha) *decoratedAlpha {
	return &decoratedAlpha{id: uuid.New(), inner: inner}
}

func (d *decoratedAlpha) ID() uuid.UUID { return d.id }

type betaImpl struct {
	id    uuid.UUID
	alpha alpha
}

func newBeta(a alpha) *betaImpl {
	return &betaImpl{id: uuid.New(), alpha: a}
}

func (b *betaImpl) ID() uuid.UUID { return b.id }
func (b *betaImpl) Alpha() alpha { return b.alpha }

type firstBox struct {
	id    uuid.UUID
	alpha alpha
}

func newFirstBox(a alpha) *firstBox {
	return &firstBox{id: uuid.New(), alpha: a}
}

func (b *firstBox) ID() uuid.UUID { return b.id }
func (b *firstBox) Content() alpha { return b.alpha }

type secondBox struct {
	id uuid.UUID
}

func newSecondBox() *secondBox {
	return &secondBox{id: uuid.New()}
}

func (b *secondBox) ID() uuid.UUID { return b.id }
func (b *secondBox) Content() alpha { return nil }

type stringBox struct {
	id uuid.UUID
}

func newStringBox() *stringBox {
	return &stringBox{id: uuid.New()}
}

func (b *stringBox) ID() uuid.UUID { return b.id }
func (b *stringBox) Content() string { return "content" }

// Cyclic pair: ping needs pong, pong needs ping.

type ping interface{ Ping() }
type pong interface{ Pong() }

type pingImpl struct{ pong pong }
type pongImpl struct{ ping ping }

func (*pingImpl) Ping() {}
func (*pongImpl) Pong() {}

func newPing(p pong) *pingImpl { return &pingImpl{pong: p} }
func newPong(p ping) *pongImpl { return &pongImpl{ping: p} }

var errBoom = errors.New("boom")

func newFailingAlpha() (*alphaImpl, error) {
	return nil, errBoom
}

func newCheckedAlpha() (*alphaImpl, error) {
	return newAlpha(), nil
}
