package encoding

import (
	"github.com/gostdlib/base/concurrency/sync"
	"github.com/gostdlib/base/context"
)

// Pool is the default Builder pool, reused across encodes the same way
// segment.DefaultPool reuses segment.Struct instances: Put runs a
// Builder's Reset automatically via the Resetter interface, so a
// Builder taken from Pool is always ready to build a fresh buffer.
var Pool *sync.Pool[*Builder]

func init() {
	Pool = sync.NewPool[*Builder](
		context.Background(),
		"encoding.Builder",
		func() *Builder {
			return New()
		},
	)
}

// GetBuilder retrieves a pooled Builder, creating one if the pool is
// empty.
func GetBuilder(ctx context.Context) *Builder {
	return Pool.Get(ctx)
}

// PutBuilder returns b to Pool for reuse. Callers must not touch b
// again afterward.
func PutBuilder(ctx context.Context, b *Builder) {
	Pool.Put(ctx, b)
}
