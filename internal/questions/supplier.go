package questions

import "context"

// Supplier produces the ordered question queue for a candidate's tech
// stack. Implementations never return an empty queue for a non-empty
// stack and never propagate errors to the caller: any internal failure
// is absorbed by a deterministic fallback.
type Supplier interface {
	Supply(ctx context.Context, techStack []string) []Record
}
