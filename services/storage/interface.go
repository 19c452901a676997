package storage

import "context"

// PhotoStore retains the owner's latest uploaded outfit photo so a failed
// analysis can be retried without re-uploading. One photo per owner;
// saving again replaces it.
type PhotoStore interface {
	Save(ctx context.Context, owner string, jpeg []byte) error
	Load(ctx context.Context, owner string) ([]byte, error)
	Delete(ctx context.Context, owner string) error
}
