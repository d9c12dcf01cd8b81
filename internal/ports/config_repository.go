package ports

import "context"

// Port: the mutable key/value store of service parameters.
type ConfigRepository interface {
	// Retrieve the value for key and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)

	// Upsert every supplied key, including keys nothing reads yet, and
	// return the keys written. An empty map fails with
	// domain.ErrNoConfigKeys.
	UpdateAll(ctx context.Context, values map[string]string) ([]string, error)

	// Insert the default entries without overwriting existing keys.
	Seed(ctx context.Context) error
}
