package news

import "testing"

func TestInferCategory(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		want        string
	}{
		{
			"sports from title",
			"Olunga breaks scoring record in league match",
			"",
			"sports",
		},
		{
			"technology from 5g keyword",
			"Safaricom switches on 5G network",
			"The telco brings broadband speeds to Nairobi",
			"technology",
		},
		{
			"politics from election coverage",
			"Parliament debates election law ahead of campaign season",
			"The president urged legislators to pass the policy",
			"politics",
		},
		{
			"health from outbreak wording",
			"Hospital responds to cholera outbreak",
			"Doctors administer vaccine doses at the clinic",
			"health",
		},
		{
			"multi-word keyword in title",
			"Artificial intelligence reshapes newsrooms",
			"",
			"technology",
		},
		{
			"title outweighs description",
			"Stadium opens for marathon trials",
			"The government minister attended",
			"sports",
		},
		{
			"nothing matches",
			"A quiet day in the neighborhood",
			"Nothing much happened",
			DefaultCategory,
		},
		{
			"empty input",
			"",
			"",
			DefaultCategory,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferCategory(tt.title, tt.description); got != tt.want {
				t.Errorf("InferCategory(%q, %q) = %q, want %q", tt.title, tt.description, got, tt.want)
			}
		})
	}
}

func TestKnownCategory(t *testing.T) {
	if !KnownCategory("sports") {
		t.Error("sports should be known")
	}
	if KnownCategory("astrology") {
		t.Error("astrology should not be known")
	}
}
