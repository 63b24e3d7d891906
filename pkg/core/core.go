package core

import (
	"context"

	"github.com/daycycle/go-daywall/pkg/logger"
	"github.com/daycycle/go-daywall/pkg/solar"
)

var log = logger.Log

type Core struct {
	ctx      context.Context
	resolver solar.Resolver
}

func New(ctx context.Context, resolver solar.Resolver) *Core {
	return &Core{ctx: ctx, resolver: resolver}
}
