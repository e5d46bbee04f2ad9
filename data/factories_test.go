package data

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonFactoryProducesUniquePrefixedUsernames(t *testing.T) {
	factory := NewPersonFactory(NewFaker(1), "qa-run")

	p1 := factory.NextUnique()
	p2 := factory.NextUnique()

	assert.True(t, strings.HasPrefix(p1.Username, "qa-run.1."), "got %q", p1.Username)
	assert.True(t, strings.HasPrefix(p2.Username, "qa-run.2."), "got %q", p2.Username)
	assert.NotEqual(t, p1.Username, p2.Username)
}

func TestPersonFactoryFillsAllFields(t *testing.T) {
	p := NewPersonFactory(NewFaker(1), "qa-run").NextUnique()

	assert.NotEmpty(t, p.Name)
	assert.Contains(t, p.Email, "@")
	assert.NotEmpty(t, p.Phone)
	assert.Len(t, p.Password, 12)
	assert.NotEmpty(t, p.Address.Street)
	assert.NotEmpty(t, p.Address.City)
	assert.NotEmpty(t, p.Address.Zip)
}

func TestProductFactoryProducesUniquePrefixedTitles(t *testing.T) {
	factory := NewProductFactory(NewFaker(1), "qa-prod")

	pr1 := factory.NextUnique()
	pr2 := factory.NextUnique()

	assert.True(t, strings.HasPrefix(pr1.Title, "qa-prod.1 "), "got %q", pr1.Title)
	assert.True(t, strings.HasPrefix(pr2.Title, "qa-prod.2 "), "got %q", pr2.Title)
}

func TestProductFactoryFieldRanges(t *testing.T) {
	factory := NewProductFactory(NewFaker(1), "qa-prod")

	for i := 0; i < 10; i++ {
		pr := factory.NextUnique()
		assert.GreaterOrEqual(t, pr.Price, 1.0)
		assert.LessOrEqual(t, pr.Price, 500.0)
		assert.GreaterOrEqual(t, pr.Stock, 0)
		assert.LessOrEqual(t, pr.Stock, 100)
		assert.NotEmpty(t, pr.Category)
		assert.NotEmpty(t, pr.Description)
	}
}
