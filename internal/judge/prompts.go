package judge

import (
	"fmt"
	"strings"
)

const evaluatorPreamble = "You are an expert evaluator of AI-generated responses. You provide objective, detailed assessments based on specific criteria."

const detectorPreamble = "You are an expert at detecting hallucination and fabricated information in AI responses."

// techSpecsMarkers identify the known hardware-specification document; a
// matching context gets the detailed evaluation notes below.
var techSpecsMarkers = []string{
	"Intel Core i7-13700K",
	"tech_specs",
	"technical specifications",
}

const techSpecsDefault = "Technical specifications for Intel Core i7-13700K processor and NVIDIA GeForce RTX 4090 graphics card"

const techSpecsNotes = `
- Document contains Intel Core i7-13700K specs: 16 cores (8 P-cores + 8 E-cores), 24 threads, 5.4 GHz boost, LGA-1700 socket, 125W TDP
- Document contains NVIDIA RTX 4090 specs: Ada Lovelace architecture, 5nm process, 16,384 CUDA cores, 24 GB GDDR6X, 450W TDP
- Technical features: Hyper-Threading, Turbo Boost, Thread Director, NVENC, NVDEC, Ray Tracing, DirectX 12 Ultimate
- Performance metrics: Cinebench R23: ~30,700 pts, Geekbench 6: ~17,000 multi-core, FP32: ~82.6 TFLOPS
- Memory support: DDR4-3200/DDR5-5600 for CPU, GDDR6X for GPU
- The document does NOT contain: AMD processors, Apple Silicon, mobile chips, detailed pricing information, competitive comparisons, software reviews
`

const genericDefault = "Technical specification document analysis"

const genericNotes = `
- Evaluate based on factual accuracy and relevance to the technical specifications
- Check for hallucinated or fabricated information not present in the source document
- Assess grounding in actual hardware specifications vs. general knowledge
- Verify technical details match documented specifications
`

type contextualInfo struct {
	defaultContext  string
	evaluationNotes string
}

func contextualInfoFor(documentContext string) contextualInfo {
	for _, marker := range techSpecsMarkers {
		if strings.Contains(documentContext, marker) {
			return contextualInfo{defaultContext: techSpecsDefault, evaluationNotes: techSpecsNotes}
		}
	}
	return contextualInfo{defaultContext: genericDefault, evaluationNotes: genericNotes}
}

var criteriaDescriptions = map[string]string{
	"relevance":    "RELEVANCE (1-5): How well does the answer relate to the question asked?",
	"accuracy":     "ACCURACY (1-5): How factually correct is the answer based on the document?",
	"completeness": "COMPLETENESS (1-5): How thoroughly does the answer address the question?",
	"clarity":      "CLARITY (1-5): How clear and understandable is the answer?",
	"grounding":    "GROUNDING (1-5): How well is the answer grounded in the source document?",
}

func criterionDescription(criterion string) string {
	if description, ok := criteriaDescriptions[criterion]; ok {
		return description
	}
	return fmt.Sprintf("%s (1-5): Rate this aspect of the response.", strings.ToUpper(criterion))
}

// buildEvaluationPrompt composes the rubric prompt for one evaluation call.
func buildEvaluationPrompt(question, answer, documentContext string, criteria []string) string {
	info := contextualInfoFor(documentContext)
	contextBlock := documentContext
	if contextBlock == "" {
		contextBlock = info.defaultContext
	}

	descriptions := make([]string, 0, len(criteria))
	jsonFields := make([]string, 0, len(criteria))
	for _, criterion := range criteria {
		descriptions = append(descriptions, criterionDescription(criterion))
		jsonFields = append(jsonFields, fmt.Sprintf(`"%s": {"score": <1-5>, "reasoning": "<brief explanation>"}`, criterion))
	}

	return fmt.Sprintf(`%s

Please evaluate the following AI-generated response based on the specified criteria.

DOCUMENT CONTEXT:
%s

QUESTION:
%s

AI RESPONSE TO EVALUATE:
%s

EVALUATION CRITERIA:
%s

IMPORTANT CONTEXT FOR EVALUATION:
%s
- Evaluate if the response aligns with actual document content vs. fabricated information

Please provide your evaluation in the following JSON format:
{
  %s,
  "overall_score": <1-5>,
  "summary": "<brief overall assessment>"
}

Rate each criterion on a scale of 1-5 where:
1 = Poor/Unacceptable
2 = Below Average
3 = Average/Acceptable
4 = Good/Above Average
5 = Excellent/Outstanding

Provide only the JSON response, no additional text.`,
		evaluatorPreamble,
		contextBlock,
		question,
		answer,
		strings.Join(descriptions, "\n"),
		info.evaluationNotes,
		strings.Join(jsonFields, ",\n  "))
}

// buildHallucinationPrompt composes the hallucination-detection prompt.
func buildHallucinationPrompt(answer, documentContext string, prohibitedTerms []string) string {
	contextBlock := documentContext
	if contextBlock == "" {
		contextBlock = "No document context provided"
	}

	return fmt.Sprintf(`%s

Analyze the following AI response for potential hallucination or fabricated information.

DOCUMENT CONTEXT:
%s

AI RESPONSE:
%s

PROHIBITED CONTENT (should not appear):
%s

Please respond with a JSON object:
{
  "contains_hallucination": <true/false>,
  "contains_prohibited_content": <true/false>,
  "confidence": <0.0-1.0>,
  "reasoning": "<explanation>"
}

Consider hallucination as information that:
1. Cannot be verified from the document context
2. Contradicts the document context
3. Includes fabricated details not present in the source
4. Contains prohibited content that shouldn't be in this context`,
		detectorPreamble,
		contextBlock,
		answer,
		strings.Join(prohibitedTerms, ", "))
}
