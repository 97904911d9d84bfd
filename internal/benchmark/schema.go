// internal/benchmark/schema.go
package benchmark

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// recordSchema describes the shape a benchmark results document is expected
// to have. Validation is advisory: a document that parses but fails the
// schema is still consumed, with the mismatches logged for the operator.
var recordSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"timestamp": map[string]any{"type": "string"},
		"testType":  map[string]any{"type": "string"},
		"results": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"streaming": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"streaming": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"mean":        map[string]any{"type": "number"},
									"successRate": map[string]any{"type": "number"},
									"ttfb": map[string]any{
										"type": "object",
										"properties": map[string]any{
											"mean": map[string]any{"type": "number"},
										},
									},
								},
							},
							"nonStreaming": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"mean":        map[string]any{"type": "number"},
									"successRate": map[string]any{"type": "number"},
								},
							},
						},
					},
				},
				"caching": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"overall": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"performance": map[string]any{
										"type": "object",
										"properties": map[string]any{
											"warmCacheMean": map[string]any{"type": "number"},
										},
									},
									"overallSuccessRate": map[string]any{"type": "number"},
								},
							},
						},
					},
				},
			},
		},
	},
}

// validateRecord checks raw document bytes against recordSchema and returns
// one message per violation. A schema engine failure is reported as a single
// message rather than an error so callers can keep going.
func validateRecord(raw []byte) []string {
	schemaLoader := gojsonschema.NewGoLoader(recordSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return []string{fmt.Sprintf("schema validation unavailable: %v", err)}
	}
	if result.Valid() {
		return nil
	}

	var msgs []string
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return msgs
}
