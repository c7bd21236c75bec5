package broadcast

// Noop satisfies Broadcaster without doing anything. Used in tests and when
// no redis address is configured.
type Noop struct{}

func (Noop) Notify(uint, []SeatUpdate) {}
