package score

// Score counts the points earned during one play session.
type Score struct {
	value int
}

func NewScore() *Score {
	return &Score{}
}

// Add credits points for one eaten food.
func (s *Score) Add(points int) {
	s.value += points
}

func (s *Score) Get() int {
	return s.value
}

func (s *Score) Reset() {
	s.value = 0
}
