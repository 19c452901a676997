package collection

import "context"

// Store is the persistent collection store: named JSON-serializable values
// keyed per owner. Load fills dest with the stored value, or leaves it
// untouched when the key is absent or the stored payload is corrupt (the
// caller's zero/default value stands in; corruption is logged, never
// propagated). Save overwrites, Remove deletes.
//
// There are no transactional guarantees across keys. Consumers keeping an
// in-memory reflection of a collection must treat the persisted copy as
// the writer-of-record and rebuild the reflection from it on load.
type Store interface {
	Load(ctx context.Context, owner, key string, dest any) error
	Save(ctx context.Context, owner, key string, value any) error
	Remove(ctx context.Context, owner, key string) error
	// RemoveOwner drops every collection belonging to the owner.
	RemoveOwner(ctx context.Context, owner string) error
}
