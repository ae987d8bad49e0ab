package booking

// DefaultSlotLabels is the canonical working-day menu used when no catalog is
// configured.
var DefaultSlotLabels = []string{
	"10:00 AM", "11:00 AM", "12:00 PM",
	"01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM", "05:00 PM",
}

// SlotCatalog is the fixed ordered sequence of bookable time labels, shared by
// all counselors. It never changes after construction.
type SlotCatalog struct {
	labels []string
	index  map[string]struct{}
}

// NewSlotCatalog builds a catalog from the configured labels, falling back to
// DefaultSlotLabels when none are given.
func NewSlotCatalog(labels []string) *SlotCatalog {
	if len(labels) == 0 {
		labels = DefaultSlotLabels
	}
	c := &SlotCatalog{
		labels: append([]string(nil), labels...),
		index:  make(map[string]struct{}, len(labels)),
	}
	for _, l := range c.labels {
		c.index[l] = struct{}{}
	}
	return c
}

// Labels returns the catalog labels in booking order.
func (c *SlotCatalog) Labels() []string {
	return append([]string(nil), c.labels...)
}

// Contains reports whether the label is a bookable catalog entry.
func (c *SlotCatalog) Contains(label string) bool {
	_, ok := c.index[label]
	return ok
}

// Len returns the number of bookable slots per day.
func (c *SlotCatalog) Len() int {
	return len(c.labels)
}
