package data

import "fmt"

// Person is a fake user account.
type Person struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Username string  `json:"username"`
	Password string  `json:"password"`
	Phone    string  `json:"phone"`
	Address  Address `json:"address"`
}

type Address struct {
	Street string `json:"street"`
	City   string `json:"city"`
	Zip    string `json:"zip"`
}

// Product is a fake catalog entry.
type Product struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}

// PersonFactory is a test data generator that produces Person values.
//
// Each person has a unique username beginning with the specified prefix, so
// that records created by one run are distinguishable from anything already
// in the system under test.
type PersonFactory struct {
	faker     *Faker
	keyPrefix string
	counter   int
}

func NewPersonFactory(faker *Faker, keyPrefix string) *PersonFactory {
	return &PersonFactory{faker: faker, keyPrefix: keyPrefix}
}

func (f *PersonFactory) NextUnique() Person {
	f.counter++
	return Person{
		Name:     f.faker.Name(),
		Email:    f.faker.Email(),
		Username: fmt.Sprintf("%s.%d.%s", f.keyPrefix, f.counter, f.faker.Username()),
		Password: f.faker.Password(true, true, true, true, false, 12),
		Phone:    f.faker.Phone(),
		Address: Address{
			Street: f.faker.Street(),
			City:   f.faker.City(),
			Zip:    f.faker.Zip(),
		},
	}
}

// ProductFactory is a test data generator that produces Product values, with
// the same unique-prefix convention as PersonFactory.
type ProductFactory struct {
	faker     *Faker
	keyPrefix string
	counter   int
}

func NewProductFactory(faker *Faker, keyPrefix string) *ProductFactory {
	return &ProductFactory{faker: faker, keyPrefix: keyPrefix}
}

func (f *ProductFactory) NextUnique() Product {
	f.counter++
	return Product{
		Title:       fmt.Sprintf("%s.%d %s", f.keyPrefix, f.counter, f.faker.ProductName()),
		Description: f.faker.ProductDescription(),
		Price:       f.faker.Price(1, 500),
		Category:    f.faker.ProductCategory(),
		Stock:       f.faker.Number(0, 100),
	}
}
