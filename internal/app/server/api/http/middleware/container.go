package middleware

import "github.com/danielgtaylor/huma/v2"

// Container собирает middleware для очередного обработчика
type Container struct {
	mws huma.Middlewares
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Add(mw func(huma.Context, func(huma.Context))) {
	c.mws = append(c.mws, mw)
}

// GetAllAndClear отдает накопленные middleware и очищает контейнер
func (c *Container) GetAllAndClear() huma.Middlewares {
	out := c.mws
	c.mws = nil
	return out
}
