package qatest

import (
	"fmt"
	"testing"

	"github.com/launchdarkly/webqa-harness/framework"

	"github.com/stretchr/testify/assert"
)

type regexFilterTestParams struct {
	run         []string
	skip        []string
	testID      TestID
	shouldMatch bool
}

func TestRegexFilters(t *testing.T) {
	allParams := []regexFilterTestParams{
		// everything runs when no patterns are given
		{nil, nil, TestID(nil), true},
		{nil, nil, TestID{"users"}, true},
		{nil, nil, TestID{"users", "posts"}, true},

		// -run with a single component; patterns are unanchored regexes
		{[]string{"users"}, nil, TestID(nil), true},
		{[]string{"users"}, nil, TestID{"users"}, true},
		{[]string{"users"}, nil, TestID{"posts"}, false},
		{[]string{"users"}, nil, TestID{"end users"}, true},
		{[]string{"users"}, nil, TestID{"users", "posts"}, true},

		// -run with multiple components; ancestors of a match still run
		{[]string{"users/posts"}, nil, TestID(nil), true},
		{[]string{"users/posts"}, nil, TestID{"users"}, true},
		{[]string{"users/posts"}, nil, TestID{"posts"}, false},
		{[]string{"users/posts"}, nil, TestID{"users", "posts"}, true},
		{[]string{"users/posts"}, nil, TestID{"end users", "all posts"}, true},

		// repeated -run patterns accept a test matching any of them
		{[]string{"users", "posts"}, nil, TestID(nil), true},
		{[]string{"users", "posts"}, nil, TestID{"users"}, true},
		{[]string{"users", "posts"}, nil, TestID{"posts"}, true},
		{[]string{"users", "posts"}, nil, TestID{"albums"}, false},
		{[]string{"users", "posts"}, nil, TestID{"users", "albums"}, true},
		{[]string{"users", "posts"}, nil, TestID{"posts", "albums"}, true},
		{[]string{"users", "posts"}, nil, TestID{"end users", "all posts"}, true},

		// -skip with a single component
		{nil, []string{"users"}, TestID(nil), true},
		{nil, []string{"users"}, TestID{"users"}, false},
		{nil, []string{"users"}, TestID{"posts"}, true},
		{nil, []string{"users"}, TestID{"end users"}, false},
		{nil, []string{"users"}, TestID{"users", "posts"}, false},

		// -skip with multiple components skips the subtree, not the ancestors
		{nil, []string{"users/posts"}, TestID(nil), true},
		{nil, []string{"users/posts"}, TestID{"users"}, true},
		{nil, []string{"users/posts"}, TestID{"posts"}, true},
		{nil, []string{"users/posts"}, TestID{"users", "posts"}, false},
		{nil, []string{"users/posts"}, TestID{"users", "posts", "albums"}, false},
		{nil, []string{"users/posts"}, TestID{"users", "albums"}, true},
		{nil, []string{"users/posts"}, TestID{"end users", "all posts"}, false},

		// repeated -skip patterns reject a test matching any of them
		{nil, []string{"users", "posts"}, TestID(nil), true},
		{nil, []string{"users", "posts"}, TestID{"users"}, false},
		{nil, []string{"users", "posts"}, TestID{"posts"}, false},
		{nil, []string{"users", "posts"}, TestID{"albums"}, true},
		{nil, []string{"users", "posts"}, TestID{"users", "albums"}, false},
		{nil, []string{"users", "posts"}, TestID{"posts", "albums"}, false},
		{nil, []string{"users", "posts"}, TestID{"end users", "albums"}, false},
		{nil, []string{"users", "posts"}, TestID{"albums", "users"}, true},

		// -skip wins over -run
		{[]string{"create"}, []string{"delete"}, TestID{"create"}, true},
		{[]string{"create"}, []string{"delete"}, TestID{"create delete"}, false},

		// suite names are single ID elements containing slashes; patterns apply
		// to the flattened path
		{[]string{"unit/calculator"}, nil, TestID{"unit/calculator"}, true},
		{[]string{"unit/calculator"}, nil, TestID{"unit/calculator", "add"}, true},
		{[]string{"unit/calculator"}, nil, TestID{"integration/datastore"}, false},
		{[]string{"unit/calculator/add"}, nil, TestID{"unit/calculator"}, true},
		{nil, []string{"api/placeholder"}, TestID{"api/placeholder", "list users"}, false},
		{nil, []string{"api/placeholder/create"}, TestID{"api/placeholder"}, true},
	}
	for _, params := range allParams {
		var r RegexFilters
		for _, s := range params.run {
			r.MustMatch.Set(s)
		}
		for _, s := range params.skip {
			r.MustNotMatch.Set(s)
		}
		t.Run(fmt.Sprintf("run=%s, skip=%s, id=%s", r.MustMatch, r.MustNotMatch, params.testID), func(t *testing.T) {
			assert.Equal(t, params.shouldMatch, r.Match(params.testID))
		})
	}
}

func TestCategoryFilter(t *testing.T) {
	index := CategoryIndex{
		"api/things":  framework.CategoryAPI,
		"ui/webforms": framework.CategoryUI,
	}

	t.Run("empty category list matches everything", func(t *testing.T) {
		f := CategoryFilter{Index: index}
		assert.True(t, f.Match(TestID{"api/things", "list"}))
		assert.True(t, f.Match(TestID{"ui/webforms"}))
		assert.True(t, f.Match(TestID{"unregistered"}))
	})

	t.Run("selects suites by category", func(t *testing.T) {
		f := CategoryFilter{
			Categories: framework.Categories{framework.CategoryAPI},
			Index:      index,
		}
		assert.True(t, f.Match(TestID{"api/things"}))
		assert.True(t, f.Match(TestID{"api/things", "list", "deeply"}))
		assert.False(t, f.Match(TestID{"ui/webforms"}))
		assert.False(t, f.Match(TestID{"unregistered"}))
	})

	t.Run("root scope always matches", func(t *testing.T) {
		f := CategoryFilter{
			Categories: framework.Categories{framework.CategoryUI},
			Index:      index,
		}
		assert.True(t, f.Match(TestID(nil)))
	})
}

func TestAllFilters(t *testing.T) {
	acceptAll := Filter(func(TestID) bool { return true })
	rejectAll := Filter(func(TestID) bool { return false })

	assert.True(t, AllFilters()(TestID{"a"}))
	assert.True(t, AllFilters(acceptAll, nil, acceptAll)(TestID{"a"}))
	assert.False(t, AllFilters(acceptAll, rejectAll)(TestID{"a"}))
}
