package netstate

import (
	nmstate "github.com/nmstate/nmstate/rust/src/go/nmstate/v2"
)

type nmstateEngine struct {
	nm *nmstate.Nmstate
}

// NewEngine returns an Engine backed by the nmstate library.
func NewEngine() Engine {
	return &nmstateEngine{nm: nmstate.New()}
}

func (e *nmstateEngine) GenerateConfiguration(document string) (string, error) {
	return e.nm.GenerateConfiguration(document)
}
