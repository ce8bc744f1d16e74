package corpus

// Benchmarks holds the quality thresholds applied during validation.
// Loaded once per validator; never mutated.
type Benchmarks struct {
	ResponseTimeMS ResponseTimeBuckets `json:"response_time_ms" yaml:"response_time_ms"`
	ResponseLength LengthBuckets       `json:"response_length" yaml:"response_length"`
	SuccessRate    RateBuckets         `json:"success_rate" yaml:"success_rate"`
}

// ResponseTimeBuckets are ascending millisecond cutoffs.
type ResponseTimeBuckets struct {
	Excellent  int64 `json:"excellent" yaml:"excellent"`
	Good       int64 `json:"good" yaml:"good"`
	Acceptable int64 `json:"acceptable" yaml:"acceptable"`
	Poor       int64 `json:"poor" yaml:"poor"`
}

// LengthBuckets bound response length in characters.
type LengthBuckets struct {
	Minimum    int `json:"minimum" yaml:"minimum"`
	OptimalMin int `json:"optimal_min" yaml:"optimal_min"`
	OptimalMax int `json:"optimal_max" yaml:"optimal_max"`
	Maximum    int `json:"maximum" yaml:"maximum"`
}

// RateBuckets classify aggregate success rates.
type RateBuckets struct {
	Excellent  float64 `json:"excellent" yaml:"excellent"`
	Good       float64 `json:"good" yaml:"good"`
	Acceptable float64 `json:"acceptable" yaml:"acceptable"`
	Poor       float64 `json:"poor" yaml:"poor"`
}

// Criterion describes one judge scoring dimension.
type Criterion struct {
	Description string `json:"description" yaml:"description"`
	Scale       string `json:"scale" yaml:"scale"`
}

// DefaultBenchmarks returns the standard quality thresholds.
func DefaultBenchmarks() Benchmarks {
	return Benchmarks{
		ResponseTimeMS: ResponseTimeBuckets{
			Excellent:  1000,
			Good:       3000,
			Acceptable: 10000,
			Poor:       30000,
		},
		ResponseLength: LengthBuckets{
			Minimum:    10,
			OptimalMin: 50,
			OptimalMax: 500,
			Maximum:    2000,
		},
		SuccessRate: RateBuckets{
			Excellent:  0.95,
			Good:       0.85,
			Acceptable: 0.70,
			Poor:       0.50,
		},
	}
}

// DefaultJudgeCriteria returns the rubric dimensions recorded in the corpus.
func DefaultJudgeCriteria() map[string]Criterion {
	return map[string]Criterion{
		"relevance": {
			Description: "How well does the answer relate to the question and document content?",
			Scale:       "1-5",
		},
		"accuracy": {
			Description: "How factually correct is the answer based on the document?",
			Scale:       "1-5",
		},
		"completeness": {
			Description: "How thoroughly does the answer address the question?",
			Scale:       "1-5",
		},
		"grounding": {
			Description: "How well is the answer grounded in the source document?",
			Scale:       "1-5",
		},
	}
}
