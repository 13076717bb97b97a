package main

import (
	"context"

	"github.com/hejijunhao/lovetype/internal/client"
	"github.com/hejijunhao/lovetype/pkg/lovetype"
)

// backend answers the read commands, either from the local data directory
// or from a running server.
type backend interface {
	Classify(ctx context.Context, typeA, typeB string) (lovetype.Result, error)
	Types(ctx context.Context) ([]string, error)
	Health(ctx context.Context) (map[string]string, error)
}

var (
	_ backend = localBackend{}
	_ backend = (*client.Client)(nil)
)

type localBackend struct {
	lt *lovetype.Lovetype
}

func (b localBackend) Classify(_ context.Context, typeA, typeB string) (lovetype.Result, error) {
	return b.lt.Classify(typeA, typeB)
}

func (b localBackend) Types(context.Context) ([]string, error) {
	return b.lt.Types()
}

func (b localBackend) Health(context.Context) (map[string]string, error) {
	return b.lt.Health(), nil
}
