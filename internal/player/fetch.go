package player

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/llehouerou/tunes/internal/metrics"
)

// progress tracks the download of one source.
type progress struct {
	loaded atomic.Int64
	total  atomic.Int64
}

// countingReader reports bytes read to a progress.
type countingReader struct {
	r    io.Reader
	prog *progress
}

func (c *countingReader) Read(b []byte) (int, error) {
	n, err := c.r.Read(b)
	if n > 0 {
		c.prog.loaded.Add(int64(n))
		metrics.PlaybackBufferedBytes.Add(float64(n))
	}
	return n, err
}

// fetchedSource is a fully buffered source.
type fetchedSource struct {
	data        []byte
	contentType string
}

func (p *Player) fetch(ctx context.Context, src string, prog *progress) (*fetchedSource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		metrics.PlaybackErrorsTotal.WithLabelValues("fetch").Inc()
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.PlaybackErrorsTotal.WithLabelValues("fetch").Inc()
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}
	if resp.ContentLength > p.maxBytes {
		metrics.PlaybackErrorsTotal.WithLabelValues("fetch").Inc()
		return nil, fmt.Errorf("source is %d bytes, limit is %d", resp.ContentLength, p.maxBytes)
	}
	prog.total.Store(resp.ContentLength)

	// One byte past the limit tells an oversized body from one that fits.
	body := io.LimitReader(&countingReader{r: resp.Body, prog: prog}, p.maxBytes+1)
	data, err := io.ReadAll(body)
	if err != nil {
		metrics.PlaybackErrorsTotal.WithLabelValues("fetch").Inc()
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(data)) > p.maxBytes {
		metrics.PlaybackErrorsTotal.WithLabelValues("fetch").Inc()
		return nil, fmt.Errorf("source exceeds %d bytes", p.maxBytes)
	}
	return &fetchedSource{data: data, contentType: resp.Header.Get("Content-Type")}, nil
}
