// Package dictionary reads whitespace-separated word lists.
package dictionary

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// maxTokenSize bounds a single token. Longer tokens fail the scan rather
// than silently truncating.
const maxTokenSize = 1 << 20

// Scan calls fn for every whitespace-delimited token in r. Read errors are
// returned as-is so the caller can discard a partial load.
func Scan(r io.Reader, fn func(token string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	scanner.Split(bufio.ScanWords)

	for scanner.Scan() {
		fn(scanner.Text())
	}
	return scanner.Err()
}

// ReadTokens returns every token of r.
func ReadTokens(r io.Reader) ([]string, error) {
	var tokens []string
	err := Scan(r, func(token string) {
		tokens = append(tokens, token)
	})
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

// ReadFile opens path with the given encoding and returns its tokens.
func ReadFile(path string, enc Encoding) ([]string, error) {
	rc, err := Open(path, enc)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	tokens, err := ReadTokens(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}
	log.Debugf("Read %d tokens from %s", len(tokens), path)
	return tokens, nil
}

// ReadFiles reads every path concurrently. The result is indexed like paths.
// The first failure cancels the remaining reads and is returned.
func ReadFiles(ctx context.Context, enc Encoding, paths ...string) ([][]string, error) {
	results := make([][]string, len(paths))
	g, ctx := errgroup.WithContext(ctx)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tokens, err := ReadFile(path, enc)
			if err != nil {
				return err
			}
			results[i] = tokens
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
