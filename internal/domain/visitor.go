package domain

import "time"

// ActiveWindow is how recently a visitor must have been seen to count as active.
const ActiveWindow = 5 * time.Minute

// Visitor is an anonymous browser that has opened the site.
type Visitor struct {
	ID       string
	LastSeen time.Time
	Browser  string
	OS       string
	Mobile   bool
	Bot      bool
}

// ActiveAt reports whether the visitor was seen within ActiveWindow before now.
func (v *Visitor) ActiveAt(now time.Time) bool {
	return now.Sub(v.LastSeen) < ActiveWindow
}
