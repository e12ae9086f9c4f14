package collate

import "net/http"

// Archive defaults: the trusted domain and the enumeration endpoints of
// timeseriesclassification.com, plus the record fields the enumerations
// are extracted by.
const (
	// DefaultTrustedDomain is the substring every result URL must contain.
	DefaultTrustedDomain = "https://timeseriesclassification.com"

	// DefaultProblemsURL enumerates the archive's datasets.
	DefaultProblemsURL = DefaultTrustedDomain + "/JSON/datasetTable.json?order=asc"

	// DefaultClassifiersURL enumerates the archive's classifiers.
	DefaultClassifiersURL = DefaultTrustedDomain + "/JSON/algorithmTable.json?order=asc"

	problemKey    = "Dataset"
	classifierKey = "Acronym"
)

// Resample counts the archive publishes results for.
const (
	minResamples = 1
	maxResamples = 30
)

// validMetrics and validToolkits are the fixed allow-lists of the
// archive's published result dimensions.
var (
	validMetrics  = []string{"accuracy", "f1"}
	validToolkits = []string{"sktime", "tsml"}
)

// EnumSource names one enumeration: the endpoint to fetch and the record
// field to extract.
type EnumSource struct {
	URL string
	Key string
}

// Options configures a Collator.
//
// Classifiers / Problems – which enumeration values the request means.
// Metric    – one of accuracy, f1.
// Resamples – resample count in [1,30]; validated but reserved, it does
// not affect fetching yet.
// Toolkit   – one of sktime, tsml.
// TrustedDomain – substring every result URL must contain.
// ClassifierSource / ProblemSource – enumeration endpoints.
// Client – HTTP client for result fetches (and, via the private cache,
// enumeration fetches); nil means http.DefaultClient.
// Cache  – enumeration cache; nil picks a cache bound to Client, or the
// shared process-wide cache when Client is nil too.
type Options struct {
	Classifiers      Selection
	Problems         Selection
	Metric           string
	Resamples        int
	Toolkit          string
	TrustedDomain    string
	ClassifierSource EnumSource
	ProblemSource    EnumSource
	Client           *http.Client
	Cache            *EnumCache
}

// Option represents a functional option for configuring a Collator.
type Option func(*Options)

// WithClassifiers selects the classifiers to validate the request for.
func WithClassifiers(s Selection) Option {
	return func(o *Options) {
		o.Classifiers = s
	}
}

// WithProblems selects the problems to validate the request for.
func WithProblems(s Selection) Option {
	return func(o *Options) {
		o.Problems = s
	}
}

// WithMetric sets the result metric. Accepted values: accuracy, f1.
func WithMetric(metric string) Option {
	return func(o *Options) {
		o.Metric = metric
	}
}

// WithResamples sets the resample count, valid in [1,30]. The value is
// validated and reserved; it does not change what is fetched yet.
func WithResamples(n int) Option {
	return func(o *Options) {
		o.Resamples = n
	}
}

// WithToolkit sets the producing toolkit. Accepted values: sktime, tsml.
func WithToolkit(toolkit string) Option {
	return func(o *Options) {
		o.Toolkit = toolkit
	}
}

// WithTrustedDomain overrides the substring every result URL must
// contain. Meant for tests and mirrors; the default is the archive.
func WithTrustedDomain(domain string) Option {
	return func(o *Options) {
		o.TrustedDomain = domain
	}
}

// WithClassifierSource overrides the classifier enumeration endpoint.
func WithClassifierSource(url, key string) Option {
	return func(o *Options) {
		o.ClassifierSource = EnumSource{URL: url, Key: key}
	}
}

// WithProblemSource overrides the problem enumeration endpoint.
func WithProblemSource(url, key string) Option {
	return func(o *Options) {
		o.ProblemSource = EnumSource{URL: url, Key: key}
	}
}

// WithHTTPClient sets the HTTP client used for all of the collator's
// network I/O. Inject a client carrying a Timeout to bound calls.
func WithHTTPClient(client *http.Client) Option {
	return func(o *Options) {
		o.Client = client
	}
}

// WithEnumCache shares an enumeration cache between collators, or
// isolates one in tests.
func WithEnumCache(cache *EnumCache) Option {
	return func(o *Options) {
		o.Cache = cache
	}
}

// DefaultOptions returns the Options used when no functional options are
// given: everything selected, accuracy from sktime at one resample,
// against the live archive.
func DefaultOptions() Options {
	return Options{
		Classifiers:      All(),
		Problems:         All(),
		Metric:           "accuracy",
		Resamples:        1,
		Toolkit:          "sktime",
		TrustedDomain:    DefaultTrustedDomain,
		ClassifierSource: EnumSource{URL: DefaultClassifiersURL, Key: classifierKey},
		ProblemSource:    EnumSource{URL: DefaultProblemsURL, Key: problemKey},
	}
}
