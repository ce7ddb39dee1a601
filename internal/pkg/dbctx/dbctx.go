package dbctx

import (
	"context"

	"gorm.io/gorm"
)

// Context bundles a request context with an optional GORM transaction.
type Context struct {
	Ctx context.Context
	Tx  *gorm.DB
}

// From wraps a plain context with no transaction.
func From(ctx context.Context) Context {
	return Context{Ctx: ctx}
}

// Handle returns the transaction when one is set, otherwise fallback, bound to Ctx.
func (c Context) Handle(fallback *gorm.DB) *gorm.DB {
	h := c.Tx
	if h == nil {
		h = fallback
	}
	ctx := c.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return h.WithContext(ctx)
}

// WithTx returns a copy bound to tx.
func (c Context) WithTx(tx *gorm.DB) Context {
	return Context{Ctx: c.Ctx, Tx: tx}
}
