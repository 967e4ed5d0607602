package arena

// ArenaMetrics is a snapshot of one arena's bookkeeping.
type ArenaMetrics struct {
	ID              string  // UUID tag, for distinguishing arenas in multi-arena pools
	UsedBytes       int     // payload bytes currently allocated
	Capacity        int     // total payload bytes this arena can ever carve up
	RegionCount     int     // live regions, used and free
	FreeRegionCount int     // regions currently in the free tree
	Utilization     float64 // UsedBytes / Capacity, 0 if Capacity is 0
}

// Metrics returns a snapshot of this arena's statistics.
func (a *Arena) Metrics() ArenaMetrics {
	capacity := int(a.payloadCapacity())
	util := 0.0
	if capacity > 0 {
		util = float64(a.usedPayload) / float64(capacity)
	}
	return ArenaMetrics{
		ID:              a.id.String(),
		UsedBytes:       int(a.usedPayload),
		Capacity:        capacity,
		RegionCount:     a.regionCount,
		FreeRegionCount: a.freeRegionCount,
		Utilization:     util,
	}
}

// PoolMetrics is a snapshot of a pool's statistics, aggregated across
// every arena it has provisioned so far.
type PoolMetrics struct {
	Arenas            []ArenaMetrics
	ProvisionedArenas int
	MaxArenas         int
	TotalUsedBytes    int
	TotalCapacity     int
	Utilization       float64
}

// Metrics returns a snapshot of every provisioned arena plus pool-wide
// totals.
func (p *Pool) Metrics() PoolMetrics {
	m := PoolMetrics{
		Arenas:            make([]ArenaMetrics, 0, p.watermark+1),
		ProvisionedArenas: p.watermark + 1,
		MaxArenas:         p.maxArenas,
	}
	for i := 0; i <= p.watermark; i++ {
		am := p.arenas[i].Metrics()
		m.Arenas = append(m.Arenas, am)
		m.TotalUsedBytes += am.UsedBytes
		m.TotalCapacity += am.Capacity
	}
	if m.TotalCapacity > 0 {
		m.Utilization = float64(m.TotalUsedBytes) / float64(m.TotalCapacity)
	}
	return m
}
