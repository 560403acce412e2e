package repositories

import (
	"context"
)

// UnitOfWork runs multi-repository writes atomically. Wall deletion uses it
// to remove the wall together with its projects and team members.
type UnitOfWork interface {
	// Do executes fn within a transaction scope. Repository calls made with
	// the ctx passed to fn join that transaction.
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
