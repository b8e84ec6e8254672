package discount

import "fmt"

// Policy is the percentage rule applied to a ticket's price when a sale is
// booked. The percentage is taken as given: values above 100 yield negative
// prices and values below 0 yield surcharges.
type Policy struct {
	percentage float64
	active     bool
}

func NewPolicy(percentage float64, active bool) *Policy {
	return &Policy{
		percentage: percentage,
		active:     active,
	}
}

func (p *Policy) Enable() {
	p.active = true
}

func (p *Policy) Disable() {
	p.active = false
}

func (p *Policy) Apply(price float64) float64 {
	if !p.active {
		return price
	}
	return price * (1 - p.percentage/100)
}

func (p *Policy) Details() string {
	if !p.active {
		return "No discount"
	}
	return fmt.Sprintf("%g%% discount", p.percentage)
}

func (p *Policy) IsActive() bool      { return p.active }
func (p *Policy) Percentage() float64 { return p.percentage }
