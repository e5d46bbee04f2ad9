package framework

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Category identifies the kind of a test suite. Every suite declares exactly
// one category when it is registered, and the command line can select suites
// by category.
type Category string

const (
	CategoryUnit        Category = "unit"
	CategoryIntegration Category = "integration"
	CategoryAPI         Category = "api"
	CategoryUI          Category = "ui"
)

// AllCategories returns the valid categories in a fixed order.
func AllCategories() []Category {
	return []Category{CategoryUnit, CategoryIntegration, CategoryAPI, CategoryUI}
}

// ParseCategory validates a category name from the command line or a config
// file.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !slices.Contains(AllCategories(), c) {
		return "", fmt.Errorf("unknown test category %q (valid categories are %v)", s, AllCategories())
	}
	return c, nil
}

func (c Category) String() string { return string(c) }

// Categories is a list of categories, as used for command-line filtering.
type Categories []Category

// Has returns true if the specified category appears in the list.
func (cs Categories) Has(c Category) bool {
	return slices.Contains(cs, c)
}

func (cs Categories) String() string {
	ss := make([]string, 0, len(cs))
	for _, c := range cs {
		ss = append(ss, c.String())
	}
	return strings.Join(ss, ",")
}

// Set is called by the command line parser. A repeated flag appends; a single
// value may also name several categories separated by commas.
func (cs *Categories) Set(value string) error {
	for _, s := range strings.Split(value, ",") {
		c, err := ParseCategory(strings.TrimSpace(s))
		if err != nil {
			return err
		}
		if !cs.Has(c) {
			*cs = append(*cs, c)
		}
	}
	return nil
}
