package arena

import "fmt"

// Stats is a point-in-time snapshot of an arena's region chain.
type Stats struct {
	Regions  int // regions currently linked
	Capacity int // total capacity across all regions, in bytes
	Used     int // bytes consumed in active regions, including padding
}

// Stats reports the arena's current region chain. Regions past the current
// one count toward capacity but not usage; they are empty until adopted.
func (a *Arena) Stats() Stats {
	var s Stats
	s.Regions = len(a.regions)
	for i, r := range a.regions {
		s.Capacity += len(r.buf)
		if i <= a.cur {
			s.Used += r.used
		}
	}
	return s
}

// String renders the snapshot in the "N regions, used/capacity bytes" form.
func (s Stats) String() string {
	return fmt.Sprintf("%d regions, %d/%d bytes used", s.Regions, s.Used, s.Capacity)
}
