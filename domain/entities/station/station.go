package station

import "fmt"

// Pair start and end station of a trip
type Pair struct {
	Start string
	End   string
}

func NewPair(start string, end string) Pair {
	return Pair{
		Start: start,
		End:   end,
	}
}

// Label returns the pair as "Start to End"
func (p Pair) Label() string {
	return fmt.Sprintf("%s to %s", p.Start, p.End)
}
