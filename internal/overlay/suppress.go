package overlay

import "github.com/appengine-ltd/friendlist/internal/input"

// Filter names registered on the input chain while the window is open.
const (
	FilterEscape = "friendlist.escape"
	FilterCancel = "friendlist.cancel"
	FilterScroll = "friendlist.scroll"
)

func (c *Controller) registerFilters() {
	if c.opts.Input == nil {
		return
	}
	c.releaseFilters()
	c.release = append(c.release,
		c.opts.Input.Register(input.Filter{Name: FilterEscape, Suppress: func(q input.Query) bool {
			return q.Kind == input.KindKey && q.Key == input.KeyEscape
		}}),
		c.opts.Input.Register(input.Filter{Name: FilterCancel, Suppress: func(q input.Query) bool {
			return q.Kind == input.KindButton && q.Name == input.ButtonCancel
		}}),
		c.opts.Input.Register(input.Filter{Name: FilterScroll, Suppress: func(q input.Query) bool {
			return q.Kind == input.KindAxis && q.Name == input.AxisScrollWheel
		}}),
	)
}

func (c *Controller) releaseFilters() {
	for _, remove := range c.release {
		remove()
	}
	c.release = nil
}
