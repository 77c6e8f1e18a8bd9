package session

import "testing"

func TestProgress_Record(t *testing.T) {
	tests := []struct {
		name        string
		answers     []bool
		wantCorrect int
		wantAcc     float64
	}{
		{"correct", []bool{true}, 1, 1.0},
		{"incorrect", []bool{false}, 0, 0.0},
		{"mixed", []bool{true, true, false, true}, 3, 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Progress
			for _, a := range tt.answers {
				p.Record(a)
			}
			if p.Answered != len(tt.answers) {
				t.Errorf("Answered = %d, want %d", p.Answered, len(tt.answers))
			}
			if p.Correct != tt.wantCorrect {
				t.Errorf("Correct = %d, want %d", p.Correct, tt.wantCorrect)
			}
			if p.Accuracy != tt.wantAcc {
				t.Errorf("Accuracy = %f, want %f", p.Accuracy, tt.wantAcc)
			}
		})
	}
}
