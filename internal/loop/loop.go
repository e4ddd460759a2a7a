// Package loop runs the terminal front-end: a fixed-rate render loop on top
// of a per-game tick driver.
package loop

import (
	"context"
	"io"
)

// Run plays in the terminal behind r and w until the player quits or ctx is
// cancelled.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	return NewClient(r, w, opts).Run(ctx)
}
