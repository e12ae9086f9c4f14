package collate

import (
	"io"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Collator retrieves benchmark result tables from the archive after
// validating the whole request against the archive's own enumerations.
// Construct with New; the zero value is not usable.
//
// A Collator is safe to reuse for repeated Results calls; the
// enumeration cache behind it guarantees each enumeration is fetched at
// most once per cache lifetime.
type Collator struct {
	urls   []string
	cfg    Options
	client *http.Client
	cache  *EnumCache

	validClassifiers []string
	validProblems    []string
}

// New constructs a Collator for the given result URLs. With no options
// it validates everything against the live archive defaults; tests and
// mirrors override the domain, enumeration sources, client and cache.
func New(urls []string, opts ...Option) *Collator {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts { // apply each functional option
		opt(&cfg)
	}

	copied := make([]string, len(urls))
	copy(copied, urls)

	client := cfg.Client
	if client == nil {
		client = http.DefaultClient
	}
	// An explicit cache wins; otherwise an injected client gets a private
	// cache so that ALL of this collator's I/O goes through that client,
	// and the zero-config path shares the process-wide cache.
	cache := cfg.Cache
	if cache == nil {
		if cfg.Client != nil {
			cache = NewEnumCache(cfg.Client)
		} else {
			cache = defaultCache
		}
	}

	return &Collator{urls: copied, cfg: cfg, client: client, cache: cache}
}

// Results validates the request and downloads one table per result URL.
//
// Validation is fail-fast, in this order:
//
//	Stage 1: every URL must contain the trusted domain — before any I/O.
//	Stage 2: classifiers against the classifier enumeration (cached fetch).
//	Stage 3: problems against the problem enumeration (cached fetch).
//	Stage 4: metric against the metric allow-list.
//	Stage 5: resamples within [1,30] (validated, reserved).
//	Stage 6: toolkit against the toolkit allow-list.
//	Stage 7: one GET per URL, each body reshaped into an all-string table.
//
// A validation failure leaves no result fetch issued; enumeration
// fetches in stages 2–3 are a side effect of validation itself.
func (c *Collator) Results() ([]dataframe.DataFrame, error) {
	var err error

	// Stage 1: trusted domain, before any network I/O.
	var u string
	for _, u = range c.urls {
		if !strings.Contains(u, c.cfg.TrustedDomain) {
			return nil, errors.Wrapf(ErrUntrustedURL, "%s does not contain %q", u, c.cfg.TrustedDomain)
		}
	}

	// Stage 2: classifiers against the archive enumeration.
	var enum []string
	if enum, err = c.cache.Lookup(c.cfg.ClassifierSource.URL, c.cfg.ClassifierSource.Key); err != nil {
		return nil, err
	}
	if c.validClassifiers, err = c.cfg.Classifiers.resolve(enum, "classifiers"); err != nil {
		return nil, err
	}

	// Stage 3: problems against the archive enumeration.
	if enum, err = c.cache.Lookup(c.cfg.ProblemSource.URL, c.cfg.ProblemSource.Key); err != nil {
		return nil, err
	}
	if c.validProblems, err = c.cfg.Problems.resolve(enum, "problems"); err != nil {
		return nil, err
	}

	// Stage 4: metric allow-list.
	if err = checkValue(c.cfg.Metric, validMetrics, "metric"); err != nil {
		return nil, err
	}

	// Stage 5: resamples range. Reserved: validated, not used in fetching.
	if c.cfg.Resamples < minResamples || c.cfg.Resamples > maxResamples {
		return nil, errors.Wrapf(ErrResamples,
			"resamples %d outside [%d, %d]", c.cfg.Resamples, minResamples, maxResamples)
	}

	// Stage 6: toolkit allow-list.
	if err = checkValue(c.cfg.Toolkit, validToolkits, "toolkit"); err != nil {
		return nil, err
	}

	// Stage 7: fetch and reshape each result table.
	tables := make([]dataframe.DataFrame, 0, len(c.urls))
	var table dataframe.DataFrame
	for _, u = range c.urls {
		if table, err = c.fetchTable(u); err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}

	return tables, nil
}

// ValidClassifiers returns the classifier list the most recent Results
// call resolved to (the full enumeration when all were selected); empty
// until validation reaches the classifier stage.
func (c *Collator) ValidClassifiers() []string {
	out := make([]string, len(c.validClassifiers))
	copy(out, c.validClassifiers)

	return out
}

// ValidProblems returns the problem list the most recent Results call
// resolved to; empty until validation reaches the problem stage.
func (c *Collator) ValidProblems() []string {
	out := make([]string, len(c.validProblems))
	copy(out, c.validProblems)

	return out
}

// fetchTable downloads one result body and reshapes it.
func (c *Collator) fetchTable(url string) (dataframe.DataFrame, error) {
	resp, err := c.client.Get(url)
	if err != nil {
		return dataframe.DataFrame{}, errors.Wrapf(err, "collate: fetch results %s", url)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return dataframe.DataFrame{}, errors.Wrapf(ErrHTTPStatus, "%s from results %s", resp.Status, url)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return dataframe.DataFrame{}, errors.Wrapf(err, "collate: read results %s", url)
	}

	table, err := tableFromText(string(body))
	if err != nil {
		return dataframe.DataFrame{}, errors.Wrapf(err, "collate: reshape results %s", url)
	}

	return table, nil
}

// tableFromText splits raw result text into a rectangular all-string
// table: records on "\n", fields on ",", no header detection, no type
// coercion. Short records are padded with empty cells to the widest
// record, because the dataframe library requires rectangular input —
// padding keeps the record count intact (a trailing newline becomes a
// row of empty cells rather than a parse error).
func tableFromText(text string) (dataframe.DataFrame, error) {
	rows := strings.Split(text, "\n")
	records := make([][]string, len(rows))
	width := 0
	var i int
	var row string
	for i, row = range rows {
		records[i] = strings.Split(row, ",")
		if len(records[i]) > width {
			width = len(records[i])
		}
	}
	for i = range records {
		for len(records[i]) < width {
			records[i] = append(records[i], "")
		}
	}

	table := dataframe.LoadRecords(
		records,
		dataframe.HasHeader(false),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if table.Err != nil {
		return dataframe.DataFrame{}, errors.Wrap(table.Err, "load records")
	}

	return table, nil
}
