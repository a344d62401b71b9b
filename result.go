package routepick

import "github.com/rubenv/routepick/selector"

// TapResult is the printable form of a selection outcome.
type TapResult struct {
	Outcome  string  `json:"outcome"`
	Route    string  `json:"route,omitempty"`
	Name     string  `json:"name,omitempty"`
	Index    int     `json:"index"`
	Distance float64 `json:"distance,omitempty"`
}

func NewTapResult(out selector.Outcome) *TapResult {
	res := &TapResult{
		Outcome:  out.Kind.String(),
		Index:    out.Index,
		Distance: out.Distance,
	}
	if out.Route != nil {
		res.Route = out.Route.ID()
		if r, ok := out.Route.(*Route); ok {
			res.Name = r.Name
		}
	}
	return res
}
