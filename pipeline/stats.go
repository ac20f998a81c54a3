package pipeline

// Duplicate is the Stats.Dropped key for pairs removed by deduplication.
const Duplicate = "duplicate"

// Stats summarizes a run. In paired mode counts are pairs and bases and
// lengths refer to mate 1.
type Stats struct {
	Paired        bool
	Read          int
	Written       int
	BasesWritten  int
	BudgetReached bool
	Dropped       map[string]int
	Lengths       map[int]int // written read length -> count
}

func newStats(paired bool) Stats {
	return Stats{
		Paired:  paired,
		Dropped: make(map[string]int),
		Lengths: make(map[int]int),
	}
}

func (s *Stats) drop(reason string) {
	s.Dropped[reason]++
}

func (s *Stats) wrote(length int) {
	s.Written++
	s.BasesWritten += length
	s.Lengths[length]++
}

// TotalDropped is the number of reads or pairs removed by filters.
func (s Stats) TotalDropped() int {
	var ans int
	for _, n := range s.Dropped {
		ans += n
	}
	return ans
}
