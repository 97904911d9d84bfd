// internal/benchmark/types.go
package benchmark

// Record is the root payload written by the external benchmark runner.
// Categories under Results other than streaming and caching are ignored.
type Record struct {
	Timestamp string   `json:"timestamp,omitempty"`
	TestType  string   `json:"testType,omitempty"`
	Results   *Results `json:"results,omitempty"`
}

// Results groups the recognized test categories.
type Results struct {
	Streaming []StreamingTestCase `json:"streaming,omitempty"`
	Caching   []CachingResult     `json:"caching,omitempty"`
}

// StreamingTestCase holds one paired streamed/non-streamed measurement.
type StreamingTestCase struct {
	Streaming    StreamSample `json:"streaming"`
	NonStreaming PlainSample  `json:"nonStreaming"`
}

// StreamSample mirrors the streamed half of a test case. TTFB is only
// measured for streamed responses.
type StreamSample struct {
	Mean        float64 `json:"mean"`
	SuccessRate float64 `json:"successRate"`
	TTFB        TTFB    `json:"ttfb"`
}

// TTFB carries the mean time-to-first-byte in milliseconds.
type TTFB struct {
	Mean float64 `json:"mean"`
}

// PlainSample mirrors the non-streamed half of a test case.
type PlainSample struct {
	Mean        float64 `json:"mean"`
	SuccessRate float64 `json:"successRate"`
}

// CachingResult holds one cache benchmark summary. OverallSuccessRate is a
// pointer so an absent value can be told apart from a recorded zero.
type CachingResult struct {
	Overall CachingOverall `json:"overall"`
}

// CachingOverall nests the cache performance summary.
type CachingOverall struct {
	Performance        CachingPerformance `json:"performance"`
	OverallSuccessRate *float64           `json:"overallSuccessRate,omitempty"`
}

// CachingPerformance carries the warm-cache mean response time in milliseconds.
type CachingPerformance struct {
	WarmCacheMean float64 `json:"warmCacheMean"`
}
