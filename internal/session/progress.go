package session

// Progress counts answered questions in a session.
type Progress struct {
	Answered int
	Correct  int
	Accuracy float64 // Correct / Answered (computed)
}

// Record adds a new answer result to the progress.
func (p *Progress) Record(correct bool) {
	p.Answered++
	if correct {
		p.Correct++
	}
	if p.Answered > 0 {
		p.Accuracy = float64(p.Correct) / float64(p.Answered)
	}
}
