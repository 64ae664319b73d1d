package jukebox

import (
	"context"
	"strings"

	"github.com/llehouerou/tunes/internal/catalog"
	"github.com/llehouerou/tunes/internal/errmsg"
	"github.com/llehouerou/tunes/internal/logging"
	"github.com/llehouerou/tunes/internal/metrics"
)

// Search schedules a name search. Each call replaces the pending one; the
// query runs once input has been quiet for the search delay.
func (j *Jukebox) Search(ctx context.Context, query string) {
	j.search.Trigger(func() {
		j.RunSearch(ctx, query)
	})
}

// CancelSearch drops a scheduled search.
func (j *Jukebox) CancelSearch() {
	j.search.Cancel()
}

// RunSearch executes a search immediately. A blank query restores the
// catalog under the active genre filter. A response that arrives after a newer search started is
// discarded.
func (j *Jukebox) RunSearch(ctx context.Context, query string) {
	ticket := j.searchSeq.Next()

	q := strings.TrimSpace(query)
	if q == "" {
		j.mu.Lock()
		songs := catalog.FilterByGenre(j.state.Songs, j.genre)
		j.mu.Unlock()
		metrics.SearchesTotal.WithLabelValues("cleared").Inc()
		j.ShowSongs(songs)
		return
	}

	results, err := j.client.SearchByName(ctx, q)
	if !j.searchSeq.IsLatest(ticket) {
		metrics.SearchesTotal.WithLabelValues("stale").Inc()
		logging.Debug("search: dropping stale response for %q", q)
		return
	}
	if err != nil {
		metrics.SearchesTotal.WithLabelValues("error").Inc()
		logging.Error("%s", errmsg.FormatWith(errmsg.OpSearch, q, err))
		return
	}

	metrics.SearchesTotal.WithLabelValues("rendered").Inc()
	j.ShowSongs(results)
}
