package collate_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tsbench/collate"
)

// countingServer wraps an httptest server and counts requests per path.
type countingServer struct {
	*httptest.Server
	mu   sync.Mutex
	hits map[string]int
}

// newCountingServer serves the given path→body map, counting every hit.
func newCountingServer(bodies map[string]string) *countingServer {
	cs := &countingServer{hits: make(map[string]int)}
	cs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cs.mu.Lock()
		cs.hits[r.URL.Path]++
		cs.mu.Unlock()

		body, ok := bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)

			return
		}
		fmt.Fprint(w, body)
	}))

	return cs
}

// hitCount returns how many requests reached path.
func (cs *countingServer) hitCount(path string) int {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	return cs.hits[path]
}

// totalHits returns how many requests reached the server at all.
func (cs *countingServer) totalHits() int {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	total := 0
	for _, n := range cs.hits {
		total += n
	}

	return total
}

// TestEnumCache_FetchOncePerKey verifies the memoization granularity:
// one fetch per distinct (url, key), repeats answered from memory.
func TestEnumCache_FetchOncePerKey(t *testing.T) {
	srv := newCountingServer(map[string]string{
		"/enum": `[{"Acronym":"HC2","Rank":1},{"Acronym":"ROCKET","Rank":2}]`,
	})
	defer srv.Close()

	cache := collate.NewEnumCache(srv.Client())
	url := srv.URL + "/enum"

	first, err := cache.Lookup(url, "Acronym")
	require.NoError(t, err)
	assert.Equal(t, []string{"HC2", "ROCKET"}, first)
	assert.Equal(t, 1, srv.hitCount("/enum"))

	second, err := cache.Lookup(url, "Acronym")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, srv.hitCount("/enum"), "repeat lookup must come from memory")

	byRank, err := cache.Lookup(url, "Rank")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, byRank)
	assert.Equal(t, 2, srv.hitCount("/enum"), "a different key is a different cache entry")
}

// TestEnumCache_FailureNotCached verifies that a failed fetch leaves no
// cache entry behind: the next lookup retries and can succeed.
func TestEnumCache_FailureNotCached(t *testing.T) {
	var (
		mu    sync.Mutex
		calls int
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()

		if n == 1 {
			w.WriteHeader(http.StatusInternalServerError)

			return
		}
		fmt.Fprint(w, `[{"Dataset":"GunPoint"}]`)
	}))
	defer srv.Close()

	cache := collate.NewEnumCache(srv.Client())

	_, err := cache.Lookup(srv.URL, "Dataset")
	assert.ErrorIs(t, err, collate.ErrHTTPStatus, "first lookup sees the server failure")

	values, err := cache.Lookup(srv.URL, "Dataset")
	require.NoError(t, err, "second lookup must retry after a failure")
	assert.Equal(t, []string{"GunPoint"}, values)

	mu.Lock()
	assert.Equal(t, 2, calls)
	mu.Unlock()
}

// TestEnumCache_ScalarFormatting verifies how scalar record values turn
// into enumeration strings: strings verbatim, numbers undisturbed by
// float round-tripping, booleans formatted.
func TestEnumCache_ScalarFormatting(t *testing.T) {
	srv := newCountingServer(map[string]string{
		"/enum": `[{"V":"plain"},{"V":0.9100000000000001},{"V":3},{"V":true}]`,
	})
	defer srv.Close()

	cache := collate.NewEnumCache(srv.Client())
	values, err := cache.Lookup(srv.URL+"/enum", "V")
	require.NoError(t, err)
	assert.Equal(t, []string{"plain", "0.9100000000000001", "3", "true"}, values)
}

// TestEnumCache_MissingKey verifies that a record without the requested
// key fails the whole lookup, naming the record.
func TestEnumCache_MissingKey(t *testing.T) {
	srv := newCountingServer(map[string]string{
		"/enum": `[{"A":"x"},{"B":"y"}]`,
	})
	defer srv.Close()

	cache := collate.NewEnumCache(srv.Client())
	_, err := cache.Lookup(srv.URL+"/enum", "A")
	assert.ErrorIs(t, err, collate.ErrEnumRecord)
	assert.ErrorContains(t, err, "record 1", "the second record lacks the key")
}

// TestEnumCache_NonScalarValue verifies that nested values under the key
// are rejected rather than silently stringified.
func TestEnumCache_NonScalarValue(t *testing.T) {
	srv := newCountingServer(map[string]string{
		"/enum": `[{"A":{"nested":1}}]`,
	})
	defer srv.Close()

	cache := collate.NewEnumCache(srv.Client())
	_, err := cache.Lookup(srv.URL+"/enum", "A")
	assert.ErrorIs(t, err, collate.ErrEnumRecord)
	assert.ErrorContains(t, err, "non-scalar")
}

// TestEnumCache_MalformedBody verifies that a non-JSON body surfaces as
// a decode error, not a panic or an empty enumeration.
func TestEnumCache_MalformedBody(t *testing.T) {
	srv := newCountingServer(map[string]string{
		"/enum": "this is not json",
	})
	defer srv.Close()

	cache := collate.NewEnumCache(srv.Client())
	_, err := cache.Lookup(srv.URL+"/enum", "A")
	assert.Error(t, err)
	assert.ErrorContains(t, err, "decode enumeration")
}

// TestEnumCache_ReturnedSliceIsolated verifies that callers cannot
// corrupt the cached enumeration through the returned slice.
func TestEnumCache_ReturnedSliceIsolated(t *testing.T) {
	srv := newCountingServer(map[string]string{
		"/enum": `[{"V":"keep"}]`,
	})
	defer srv.Close()

	cache := collate.NewEnumCache(srv.Client())
	url := srv.URL + "/enum"

	first, err := cache.Lookup(url, "V")
	require.NoError(t, err)
	first[0] = "corrupted"

	second, err := cache.Lookup(url, "V")
	require.NoError(t, err)
	assert.Equal(t, []string{"keep"}, second)
}

// TestEnumCache_ConcurrentLookups verifies the at-most-one-fetch
// guarantee under concurrency: many goroutines asking for the same
// enumeration trigger a single request.
func TestEnumCache_ConcurrentLookups(t *testing.T) {
	srv := newCountingServer(map[string]string{
		"/enum": `[{"V":"a"},{"V":"b"}]`,
	})
	defer srv.Close()

	cache := collate.NewEnumCache(srv.Client())
	url := srv.URL + "/enum"

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			values, err := cache.Lookup(url, "V")
			assert.NoError(t, err)
			assert.Equal(t, []string{"a", "b"}, values)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, srv.hitCount("/enum"), "concurrent lookups share one fetch")
}
