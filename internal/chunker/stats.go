package chunker

// Stats - сводка по списку чанков
type Stats struct {
	Count   int     `json:"count" yaml:"count"`
	Total   int     `json:"total" yaml:"total"`
	Average float64 `json:"average" yaml:"average"`
	Min     int     `json:"min" yaml:"min"`
	Max     int     `json:"max" yaml:"max"`
}

// Summarize считает количество и размеры чанков
func Summarize(chunks []Chunk) Stats {
	if len(chunks) == 0 {
		return Stats{}
	}

	st := Stats{
		Count: len(chunks),
		Min:   chunks[0].Size,
		Max:   chunks[0].Size,
	}
	for _, c := range chunks {
		st.Total += c.Size
		st.Min = min(st.Min, c.Size)
		st.Max = max(st.Max, c.Size)
	}
	st.Average = float64(st.Total) / float64(st.Count)

	return st
}
