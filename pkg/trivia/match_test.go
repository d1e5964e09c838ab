package trivia

import "testing"

func TestMatchBySorting(t *testing.T) {
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
			name: "identical strings match",
			args: args{
				guess:  "FARGO",
				answer: "FARGO",
			},
			want: true,
		},
		{
			name: "transposed letters match",
			args: args{
				guess:  "GRATEWALLOFCHINA",
				answer: "GREATWALLOFCHINA",
			},
			want: true,
		},
		{
			name: "different letters don't match",
			args: args{
				guess:  "GROATWALLOFCHINA",
				answer: "GREATWALLOFCHINA",
			},
			want: false,
		},
		{
			name: "length mismatch doesn't match",
			args: args{
				guess:  "FARG",
				answer: "FARGO",
			},
			want: false,
		},
		{
			name: "empty strings don't match",
			args: args{
				guess:  "",
				answer: "",
			},
			want: false,
		},
		{
			name: "digits count as characters",
			args: args{
				guess:  "CATCH22",
				answer: "CATCH22",
			},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchBySorting(tt.args.guess, tt.args.answer); got != tt.want {
				t.Errorf("MatchBySorting() = %v, want %v", got, tt.want)
			}
			if forward, reverse := MatchBySorting(tt.args.guess, tt.args.answer), MatchBySorting(tt.args.answer, tt.args.guess); forward != reverse {
				t.Errorf("MatchBySorting() is not symmetric: %v vs %v", forward, reverse)
			}
		})
	}
}

func TestMatchByConsonants(t *testing.T) {
	type args struct {
		guess     string
		answer    string
		threshold float64
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{
			name: "missing vowel matches",
			args: args{
				guess:  "BJRK",
				answer: "BJORK",
				// one vowel in five characters
				threshold: 0.5,
			},
			want: true,
		},
		{
			name: "wrong vowel matches",
			args: args{
				guess:     "BJOREK",
				answer:    "BJORK",
				threshold: 0.5,
			},
			want: true,
		},
		{
			name: "wrong consonant doesn't match",
			args: args{
				guess:     "BJORT",
				answer:    "BJORK",
				threshold: 0.5,
			},
			want: false,
		},
		{
			name: "vowel-heavy answer is gated off",
			args: args{
				guess:  "QUEUE",
				answer: "QUEUE",
				// four vowels in five characters
				threshold: 0.5,
			},
			want: false,
		},
		{
			name: "ratio equal to threshold is gated off",
			args: args{
				guess:  "ABBA",
				answer: "ABBA",
				// two vowels in four characters
				threshold: 0.5,
			},
			want: false,
		},
		{
			name: "all-vowel guess doesn't match",
			args: args{
				guess:     "AEIOU",
				answer:    "BJORK",
				threshold: 0.5,
			},
			want: false,
		},
		{
			name: "empty answer doesn't match",
			args: args{
				guess:     "BJRK",
				answer:    "",
				threshold: 0.5,
			},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchByConsonants(tt.args.guess, tt.args.answer, tt.args.threshold); got != tt.want {
				t.Errorf("MatchByConsonants() = %v, want %v", got, tt.want)
			}
		})
	}
}
