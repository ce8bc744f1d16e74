package corpus

// Corpus is the persisted test-data file: per-document expectation records
// plus the shared quality benchmarks and judge criteria.
type Corpus struct {
	GeneratedAt       string                   `json:"generated_at" yaml:"generated_at"`
	GenerationMethod  string                   `json:"generation_method" yaml:"generation_method"`
	DocumentTests     map[string]DocumentTests `json:"document_tests" yaml:"document_tests"`
	QualityBenchmarks Benchmarks               `json:"quality_benchmarks" yaml:"quality_benchmarks"`
	JudgeCriteria     map[string]Criterion     `json:"llm_judge_criteria" yaml:"llm_judge_criteria"`
}

// DocumentTests groups the generated expectation records for one document.
type DocumentTests struct {
	Description         string        `json:"description,omitempty" yaml:"description,omitempty"`
	DocumentAnalysis    *DocumentInfo `json:"document_analysis,omitempty" yaml:"document_analysis,omitempty"`
	ContentPreview      string        `json:"content_preview,omitempty" yaml:"content_preview,omitempty"`
	FactualQuestions    []Record      `json:"factual_questions" yaml:"factual_questions"`
	HallucinationTests  []Record      `json:"hallucination_tests" yaml:"hallucination_tests"`
	AnalyticalQuestions []Record      `json:"analytical_questions" yaml:"analytical_questions"`
	EdgeCases           []Record      `json:"edge_cases" yaml:"edge_cases"`
}

// DocumentInfo captures the structural analysis that seeded generation.
type DocumentInfo struct {
	Characters  []string `json:"characters" yaml:"characters"`
	Locations   []string `json:"locations" yaml:"locations"`
	Themes      []string `json:"themes" yaml:"themes"`
	KeyEvents   []string `json:"keyEvents" yaml:"keyEvents"`
	Objects     []string `json:"objects" yaml:"objects"`
	WordCount   int      `json:"wordCount" yaml:"wordCount"`
	ExtractedAt string   `json:"extractedAt" yaml:"extractedAt"`
}

// Behavioral expectations a record may declare.
const (
	BehaviorShouldReject     = "should_reject"
	BehaviorShouldError      = "should_error"
	BehaviorGracefulHandling = "graceful_handling"
)

// Record is the unit of test truth: what a correct answer to one question
// should or must not contain. MustContainAny is tri-state: nil means the
// keyword-presence rule is not evaluated at all.
type Record struct {
	ID                  string   `json:"id" yaml:"id"`
	Question            string   `json:"question" yaml:"question"`
	ExpectedKeywords    []string `json:"expectedKeywords,omitempty" yaml:"expectedKeywords,omitempty"`
	ProhibitedContent   []string `json:"prohibitedContent,omitempty" yaml:"prohibitedContent,omitempty"`
	AcceptableResponses []string `json:"acceptableResponses,omitempty" yaml:"acceptableResponses,omitempty"`
	MustContainAny      *bool    `json:"mustContainAny,omitempty" yaml:"mustContainAny,omitempty"`
	ExpectedBehavior    string   `json:"expectedBehavior,omitempty" yaml:"expectedBehavior,omitempty"`
	ExpectedStatusCodes []int    `json:"expectedStatusCodes,omitempty" yaml:"expectedStatusCodes,omitempty"`
	Category            string   `json:"category,omitempty" yaml:"category,omitempty"`
	Difficulty          string   `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
}

// TypedRecord pairs a record with the category list it came from.
type TypedRecord struct {
	Record
	Type string `json:"type"`
}

// Record category types as reported by AllRecords.
const (
	TypeFactual       = "factual"
	TypeHallucination = "hallucination"
	TypeAnalytical    = "analytical"
	TypeEdgeCase      = "edge_case"
)

// FindRecord looks up a record by id across all categories. Factual records
// are searched first, then hallucination tests, edge cases, and analytical
// questions.
func (d DocumentTests) FindRecord(testID string) (Record, bool) {
	for _, group := range [][]Record{
		d.FactualQuestions,
		d.HallucinationTests,
		d.EdgeCases,
		d.AnalyticalQuestions,
	} {
		for _, record := range group {
			if record.ID == testID {
				return record, true
			}
		}
	}
	return Record{}, false
}

// AllRecords flattens a document's records with their category type.
func (d DocumentTests) AllRecords() []TypedRecord {
	records := make([]TypedRecord, 0,
		len(d.FactualQuestions)+len(d.HallucinationTests)+len(d.AnalyticalQuestions)+len(d.EdgeCases))
	for _, record := range d.FactualQuestions {
		records = append(records, TypedRecord{Record: record, Type: TypeFactual})
	}
	for _, record := range d.HallucinationTests {
		records = append(records, TypedRecord{Record: record, Type: TypeHallucination})
	}
	for _, record := range d.AnalyticalQuestions {
		records = append(records, TypedRecord{Record: record, Type: TypeAnalytical})
	}
	for _, record := range d.EdgeCases {
		records = append(records, TypedRecord{Record: record, Type: TypeEdgeCase})
	}
	return records
}
