package qatest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/launchdarkly/webqa-harness/framework"
)

// Filter decides whether a test with the given ID should run.
type Filter func(TestID) bool

// AllFilters combines filters so that a test runs only if every non-nil filter
// accepts it.
func AllFilters(filters ...Filter) Filter {
	return func(id TestID) bool {
		for _, f := range filters {
			if f != nil && !f(id) {
				return false
			}
		}
		return true
	}
}

// RegexFilters holds the -run and -skip selections from the command line.
type RegexFilters struct {
	MustMatch    TestIDPatternList
	MustNotMatch TestIDPatternList
}

func (r RegexFilters) Match(id TestID) bool {
	if r.MustMatch.IsDefined() && !r.MustMatch.AnyMatch(id, true) {
		return false
	}
	return !r.MustNotMatch.AnyMatch(id, false)
}

// TestIDPattern is a slash-separated list of regexes, one per test path
// component.
type TestIDPattern []*regexp.Regexp

// Match compares the pattern against the flattened path of the test ID, one
// regex per path component. With includeParents, an ID that is an ancestor of
// a fully matching ID also matches, so that parent scopes are entered.
func (p TestIDPattern) Match(id TestID, includeParents bool) bool {
	path := id.PathComponents()
	depth := len(p)
	if depth > len(path) {
		if !includeParents {
			return false
		}
		depth = len(path)
	}
	for i, rx := range p[:depth] {
		if !rx.MatchString(path[i]) {
			return false
		}
	}
	return true
}

func (p TestIDPattern) String() string {
	components := make([]string, 0, len(p))
	for _, rx := range p {
		components = append(components, rx.String())
	}
	return strings.Join(components, "/")
}

func ParseTestIDPattern(s string) (TestIDPattern, error) {
	components := strings.Split(s, "/")
	pattern := make(TestIDPattern, 0, len(components))
	for _, component := range components {
		rx, err := regexp.Compile(component)
		if err != nil {
			return nil, fmt.Errorf("invalid regex: %w", err)
		}
		pattern = append(pattern, rx)
	}
	return pattern, nil
}

// TestIDPatternList accumulates patterns from a repeatable command line flag.
type TestIDPatternList []TestIDPattern

func (l TestIDPatternList) String() string {
	quoted := make([]string, 0, len(l))
	for _, p := range l {
		quoted = append(quoted, `"`+p.String()+`"`)
	}
	return strings.Join(quoted, " or ")
}

// Set implements flag.Value; each use of the flag appends one pattern.
func (l *TestIDPatternList) Set(value string) error {
	pattern, err := ParseTestIDPattern(value)
	if err != nil {
		return err
	}
	*l = append(*l, pattern)
	return nil
}

func (l TestIDPatternList) IsDefined() bool {
	return len(l) != 0
}

func (l TestIDPatternList) AnyMatch(id TestID, includeParents bool) bool {
	for _, p := range l {
		if p.Match(id, includeParents) {
			return true
		}
	}
	return false
}

// CategoryIndex maps each top-level suite name to the category the suite
// declared when it was registered. It is built once, before any test runs,
// and is consumed by filters and loggers only.
type CategoryIndex map[string]framework.Category

// For returns the category of the suite a test belongs to, based on the first
// component of its name.
func (ci CategoryIndex) For(id TestID) (framework.Category, bool) {
	if len(id) == 0 {
		return "", false
	}
	c, ok := ci[id[0]]
	return c, ok
}

// CategoryFilter selects tests by the declared category of their enclosing
// suite. An empty category list selects everything. Scopes above the suite
// level always match so that suite registration is not filtered out.
type CategoryFilter struct {
	Categories framework.Categories
	Index      CategoryIndex
}

func (c CategoryFilter) Match(id TestID) bool {
	if len(c.Categories) == 0 || len(id) == 0 {
		return true
	}
	cat, ok := c.Index.For(id)
	return ok && c.Categories.Has(cat)
}

// PrintFilterDescription explains on the console which tests will be skipped
// because of command-line filter options.
func PrintFilterDescription(filters RegexFilters, categories framework.Categories) {
	if !filters.MustMatch.IsDefined() && !filters.MustNotMatch.IsDefined() && len(categories) == 0 {
		return
	}
	fmt.Println("Tests will be skipped based on these filter criteria:")
	if filters.MustMatch.IsDefined() {
		fmt.Printf("  run only tests matching %s\n", filters.MustMatch)
	}
	if filters.MustNotMatch.IsDefined() {
		fmt.Printf("  skip tests matching %s\n", filters.MustNotMatch)
	}
	if len(categories) > 0 {
		names := make([]string, 0, len(categories))
		for _, c := range categories {
			names = append(names, c.String())
		}
		fmt.Printf("  run only suites in categories: %s\n", strings.Join(names, ", "))
	}
	fmt.Println()
}
