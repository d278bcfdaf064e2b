package lint

import (
	"context"

	"github.com/yaklabco/gohtmlint/pkg/dom"
)

// Parser parses HTML content into a FileSnapshot.
//
// The lint package defines this interface to follow the gobible principle
// of defining interfaces in the consumer package. Implementations (e.g.,
// parser/nethtml) provide the concrete parsing logic.
//
// Implementations must be:
//   - deterministic for a given (path, content) tuple,
//   - safe for concurrent use by multiple goroutines, if documented as such,
//   - side-effect free (no I/O, no global state mutation).
type Parser interface {
	// Parse converts raw HTML bytes into a fully-populated FileSnapshot.
	//
	// Parameters:
	//   - ctx: context for cancellation and timeout propagation.
	//   - path: logical file path (for diagnostics; must not be used for I/O).
	//   - content: raw HTML bytes (must not be mutated by the implementation).
	//
	// Returns:
	//   - On success: a fully-populated FileSnapshot with a valid tree.
	//   - On error: nil and a descriptive error; no partial snapshot is returned.
	//     A malformed document yields a *nethtml.ParseError.
	//
	// The returned FileSnapshot must satisfy:
	//   - snapshot.Path == path
	//   - bytes.Equal(snapshot.Content, content)
	//   - snapshot.Root != nil && snapshot.Root.Kind == dom.NodeDocument
	//   - All nodes have node.File == snapshot
	Parse(ctx context.Context, path string, content []byte) (*dom.FileSnapshot, error)
}
