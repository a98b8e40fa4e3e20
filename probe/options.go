package probe

// Option configures a Group.
type Option func(*config)

type config struct {
	failFast      bool
	maxParallel   int
	panicToError  bool
	findingBuffer int
}

func defaultConfig() config {
	return config{
		panicToError: true,
	}
}

// WithFailFast cancels the group when the first probe error is observed.
// Measurements are independent, so the default is off: one failed probe
// leaves the others running.
func WithFailFast(enabled bool) Option {
	return func(c *config) {
		c.failFast = enabled
	}
}

// WithMaxParallel limits how many probes can run at the same time.
// 0 means unlimited.
func WithMaxParallel(limit int) Option {
	if limit < 0 {
		panic("probe: max parallel cannot be negative")
	}

	return func(c *config) {
		c.maxParallel = limit
	}
}

// WithPanicToError converts probe panics to finding errors.
func WithPanicToError(enabled bool) Option {
	return func(c *config) {
		c.panicToError = enabled
	}
}

// WithFindingBuffer preallocates finding queue capacity.
func WithFindingBuffer(size int) Option {
	if size < 0 {
		panic("probe: finding buffer cannot be negative")
	}

	return func(c *config) {
		c.findingBuffer = size
	}
}
