// Package tokenstore persists the access/refresh token pair across client
// runs. The pair is stored as two opaque strings under fixed keys; callers
// never observe a state where only one of the two is present.
package tokenstore

import (
	"context"

	"github.com/dmitrijs2005/libracli/internal/client/models"
)

// Store is the durable holder of the token pair.
//
// Contract:
//   - Save overwrites the stored pair atomically.
//   - Clear removes both tokens atomically.
//   - Access/Refresh return "" (and no error) when nothing is stored.
type Store interface {
	Save(ctx context.Context, pair models.TokenPair) error
	Clear(ctx context.Context) error
	Access(ctx context.Context) (string, error)
	Refresh(ctx context.Context) (string, error)
}
