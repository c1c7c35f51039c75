package cli

import (
	"fmt"

	backend "github.com/redis/go-redis/v9"

	fileStore "github.com/offbook/offbook/internal/adapters/file"
	memoryStore "github.com/offbook/offbook/internal/adapters/memory"
	redisStore "github.com/offbook/offbook/internal/adapters/redis"
	"github.com/offbook/offbook/pkg/ports"
)

// createStore builds the run store named by the options. The default is the
// file store so records survive the process; memory is for rehearsal runs
// that should leave no trace.
func createStore(opts RunOptions) (ports.RunStore, error) {
	switch opts.Store {
	case "", "file":
		return fileStore.NewStore(opts.StorePath), nil
	case "memory":
		return memoryStore.NewStore(), nil
	case "redis":
		redisOpts, err := backend.ParseURL(opts.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis URL: %w", err)
		}
		return redisStore.NewFromClient(backend.NewClient(redisOpts)), nil
	default:
		return nil, fmt.Errorf("unknown store kind %q (expected file, memory, or redis)", opts.Store)
	}
}
