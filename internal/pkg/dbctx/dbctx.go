package dbctx

import (
	"context"

	"gorm.io/gorm"
)

// Context bundles a request context with an optional GORM transaction.
// A nil Tx means "no open transaction yet"; the unit of work opens one.
type Context struct {
	Ctx context.Context
	Tx  *gorm.DB
}
