package domain

// Statistics summarizes a user's reading activity.
type Statistics struct {
	TotalBooks        int
	WantToRead        int
	CurrentlyReading  int
	Finished          int
	BooksReadThisYear int
	GenreDistribution map[string]int
}

// NewStatistics returns zeroed statistics with a non-nil distribution map.
func NewStatistics() *Statistics {
	return &Statistics{GenreDistribution: make(map[string]int)}
}
