package catalog

import (
	"github.com/mentora-labs/campus-map/pkg"
)

// Catalog is the ordered, immutable set of requests a map page works
// with. Order matters: marker variants and the initially-active card
// both follow it.
type Catalog struct {
	requests []HelpRequest
	idx      map[string]int
}

func New(requests []HelpRequest) *Catalog {
	idx := make(map[string]int, len(requests))
	for i, r := range requests {
		idx[r.ID] = i
	}
	return &Catalog{
		requests: requests,
		idx:      idx,
	}
}

func (c *Catalog) Len() int {
	return len(c.requests)
}

func (c *Catalog) All() []HelpRequest {
	return c.requests
}

func (c *Catalog) ByID(id string) (HelpRequest, error) {
	i, ok := c.idx[id]
	if !ok {
		return HelpRequest{}, pkg.WrapErrorf(nil, pkg.ErrNotFound, "unknown request id %q", id)
	}
	return c.requests[i], nil
}

func (c *Catalog) First() (HelpRequest, bool) {
	if len(c.requests) == 0 {
		return HelpRequest{}, false
	}
	return c.requests[0], true
}

// Filter returns the requests whose cards survive the query, keeping
// catalog order.
func (c *Catalog) Filter(query string) []HelpRequest {
	matched := make([]HelpRequest, 0, len(c.requests))
	for _, r := range c.requests {
		if r.Matches(query) {
			matched = append(matched, r)
		}
	}
	return matched
}
