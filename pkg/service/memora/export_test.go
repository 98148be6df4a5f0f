package memora

import "time"

// TimeoutOf exposes the effective budget of an operation for testing
func (c *Client) TimeoutOf(op Operation) time.Duration {
	return c.timeout(op)
}
