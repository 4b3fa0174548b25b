package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference image filenames.
var All = map[string][]TestCase{
	"basic":      basicCases,
	"flat":       flatCases,
	"degenerate": degenerateCases,
	"precision":  precisionCases,
	"ctm":        ctmCases,
	"large":      largeCases,
	"random":     Random(1, 6, 64, 64),
}
