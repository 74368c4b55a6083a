package main

import (
	"bufio"
	"context"
	"io"
)

// readLines sends each line of r on the returned channel so callers can
// select on ctx while a read is blocked. The error channel receives exactly
// one value before the line channel closes: the scanner error, or ctx.Err()
// when ctx ended first.
func readLines(ctx context.Context, r io.Reader) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- scanner.Err()
	}()
	return lines, errc
}
