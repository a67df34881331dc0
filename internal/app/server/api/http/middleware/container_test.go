package middleware

import (
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
)

func TestContainer_GetAllAndClear(t *testing.T) {
	c := NewContainer()
	noop := func(ctx huma.Context, next func(huma.Context)) { next(ctx) }

	c.Add(noop)
	c.Add(noop)
	first := c.GetAllAndClear()

	assert.Len(t, first, 2)
	assert.Empty(t, c.GetAllAndClear())

	c.Add(noop)
	assert.Len(t, c.GetAllAndClear(), 1)
	assert.Len(t, first, 2, "handed out middlewares must not change")
}
