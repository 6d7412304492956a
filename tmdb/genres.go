package tmdb

// GenreIndex maps genre identifiers to their display names
type GenreIndex map[int]string

// NewGenreIndex builds an index from a genre list
func NewGenreIndex(genres []Genre) GenreIndex {
	index := make(GenreIndex, len(genres))
	for _, genre := range genres {
		index[genre.ID] = genre.Name
	}
	return index
}

// Labels resolves genre ids to names in input order. Unknown ids are dropped.
func (gi GenreIndex) Labels(ids []int) []string {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := gi[id]; ok {
			labels = append(labels, name)
		}
	}
	return labels
}
