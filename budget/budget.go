// Package budget caps the total number of bases a run may emit.
package budget

// Counter is a running total of emitted bases. A Limit of 0 is unlimited.
type Counter struct {
	Limit int
	total int
}

// Admit adds n bases to the running total and reports whether the record
// may still be written. Once the total exceeds Limit the record that crossed
// it is rejected and the caller should stop reading.
func (c *Counter) Admit(n int) bool {
	c.total += n
	return c.Limit == 0 || c.total <= c.Limit
}

// Total returns bases counted so far, including a rejected record.
func (c *Counter) Total() int {
	return c.total
}

// Exceeded reports whether the limit has been crossed.
func (c *Counter) Exceeded() bool {
	return c.Limit != 0 && c.total > c.Limit
}
