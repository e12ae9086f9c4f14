package collate

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/cockroachdb/errors"
)

// enumKey identifies one cached enumeration: the endpoint it came from
// and the record field it was extracted by.
type enumKey struct {
	url, key string
}

// EnumCache memoizes enumeration lookups: for each distinct (url, key)
// it fetches at most once for its lifetime and serves every later call
// from memory. Failed fetches cache nothing, so the next call retries.
// There is no invalidation; a process observes the enumerations as they
// were when it first asked — staleness is the accepted price of
// simplicity.
//
// The mutex is held across the whole get-or-fetch, which serializes
// concurrent lookups and keeps the at-most-one-fetch guarantee even
// when many goroutines ask for the same enumeration at once.
type EnumCache struct {
	client *http.Client
	mu     sync.Mutex
	data   map[enumKey][]string
}

// NewEnumCache constructs an empty cache fetching through client; nil
// means http.DefaultClient.
func NewEnumCache(client *http.Client) *EnumCache {
	if client == nil {
		client = http.DefaultClient
	}

	return &EnumCache{
		client: client,
		data:   make(map[enumKey][]string),
	}
}

// defaultCache serves every Collator not given its own cache, so each
// distinct enumeration is fetched at most once per process.
var defaultCache = NewEnumCache(nil)

// Lookup returns the enumeration at url extracted by key, fetching it on
// the first call and from memory afterwards. The returned slice is a
// copy; callers may keep or mutate it freely.
func (c *EnumCache) Lookup(url, key string) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	k := enumKey{url: url, key: key}
	values, ok := c.data[k]
	if !ok {
		var err error
		if values, err = c.fetch(url, key); err != nil {
			return nil, err
		}
		c.data[k] = values
	}

	out := make([]string, len(values))
	copy(out, values)

	return out, nil
}

// fetch downloads the JSON document at url — an array of flat records —
// and extracts the value under key from each record in source order.
// Numbers are kept verbatim via json.Number, booleans are formatted;
// a missing key or a non-scalar value fails the whole lookup.
func (c *EnumCache) fetch(url, key string) ([]string, error) {
	resp, err := c.client.Get(url)
	if err != nil {
		return nil, errors.Wrapf(err, "collate: fetch enumeration %s", url)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(ErrHTTPStatus, "%s from enumeration %s", resp.Status, url)
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var records []map[string]any
	if err = dec.Decode(&records); err != nil {
		return nil, errors.Wrapf(err, "collate: decode enumeration %s", url)
	}

	values := make([]string, 0, len(records))
	var (
		i   int
		rec map[string]any
		v   any
		ok  bool
	)
	for i, rec = range records {
		if v, ok = rec[key]; !ok {
			return nil, errors.Wrapf(ErrEnumRecord, "record %d of %s has no key %q", i, url, key)
		}
		switch t := v.(type) {
		case string:
			values = append(values, t)
		case json.Number:
			values = append(values, t.String())
		case bool:
			values = append(values, strconv.FormatBool(t))
		default:
			return nil, errors.Wrapf(ErrEnumRecord, "record %d of %s holds non-scalar %T under %q", i, url, t, key)
		}
	}

	return values, nil
}
