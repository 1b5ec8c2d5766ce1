package session

import (
	"bufio"
	"context"
	"io"
)

// Lines feeds r line by line into the returned channel, which is closed at
// end of input or when ctx is done. A cancelled ctx cannot interrupt a read
// already blocked on r: the goroutine stays parked until r yields a line or
// EOF, then stops without sending.
func Lines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if ctx.Err() != nil {
				return
			}
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}
