package opt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type myStruct struct {
	Prop string
}

func TestNone(t *testing.T) {
	assert.False(t, None[int]().IsDefined())

	assert.Equal(t, 0, None[int]().Value())
	assert.Equal(t, "", None[string]().Value())
	assert.Nil(t, None[*myStruct]().Value())
	assert.Equal(t, myStruct{}, None[myStruct]().Value())
}

func TestZeroValueIsNone(t *testing.T) {
	var m Maybe[int]
	assert.False(t, m.IsDefined())
	assert.Equal(t, 0, m.Value())
}

func TestSome(t *testing.T) {
	assert.True(t, Some("").IsDefined())

	assert.Equal(t, 7, Some(7).Value())
	assert.Equal(t, "chrome", Some("chrome").Value())
}

func TestOrElse(t *testing.T) {
	assert.Equal(t, 30, None[int]().OrElse(30))
	assert.Equal(t, 45, Some(45).OrElse(30))
}

func TestFromPtr(t *testing.T) {
	assert.Equal(t, None[string](), FromPtr((*string)(nil)))

	browserName := "firefox"
	assert.Equal(t, Some(browserName), FromPtr(&browserName))
}
