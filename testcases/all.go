package testcases

// All contains all test cases, grouped by category.
var All = map[string][]TestCase{
	"reject":     rejectCases,
	"axis":       axisCases,
	"oblique":    obliqueCases,
	"endpoint":   endpointCases,
	"degenerate": degenerateCases,
}
