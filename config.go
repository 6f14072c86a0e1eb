package cargo

import "github.com/TheBitDrifter/table"

// Config holds global configuration for the packet system
var Config config = config{}

type config struct {
	tableEvents   table.TableEvents
	strictAppends bool
}

// SetTableEvents configures the event callbacks for engine-side tables
func (c *config) SetTableEvents(te table.TableEvents) {
	c.tableEvents = te
}

// SetStrictAppends enables logging when the same component type is
// appended twice to one buffer. The append itself is never rejected;
// duplicates are a call-site invariant, not a runtime condition.
func (c *config) SetStrictAppends(strict bool) {
	c.strictAppends = strict
}
