package trivia

import "testing"

func TestCheckGuess(t *testing.T) {
	type args struct {
		guess  string
		answer string
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{
			name: "exact match",
			args: args{
				guess:  "the Great Wall of China",
				answer: "the Great Wall of China",
			},
			want: true,
		},
		{
			name: "case and articles don't matter",
			args: args{
				guess:  "GREAT WALL OF CHINA",
				answer: "the Great Wall of China",
			},
			want: true,
		},
		{
			name: "transposed letters match by sorting",
			args: args{
				guess:  "GRATE WALL OF CHINA",
				answer: "the Great Wall of China",
			},
			want: true,
		},
		{
			name: "missing vowels match by consonants",
			args: args{
				guess:  "grat wall of china",
				answer: "the Great Wall of China",
			},
			want: true,
		},
		{
			name: "alternate answer accepted",
			args: args{
				guess:  "sagarmatha",
				answer: "Mount Everest (or Sagarmatha)",
			},
			want: true,
		},
		{
			name: "primary answer still accepted with alternate present",
			args: args{
				guess:  "mount everest",
				answer: "Mount Everest (or Sagarmatha)",
			},
			want: true,
		},
		{
			name: "wrong answer rejected",
			args: args{
				guess:  "the Berlin Wall",
				answer: "the Great Wall of China",
			},
			want: false,
		},
		{
			name: "empty guess rejected",
			args: args{
				guess:  "",
				answer: "the Great Wall of China",
			},
			want: false,
		},
		{
			name: "empty answer rejected",
			args: args{
				guess:  "anything",
				answer: "",
			},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckGuess(tt.args.guess, tt.args.answer, 0.5); got != tt.want {
				t.Errorf("CheckGuess() = %v, want %v", got, tt.want)
			}
		})
	}
}
