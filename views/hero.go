package views

type LiveStat struct {
	Title      string `json:"title"`
	Value      string `json:"value"`
	Descriptor string `json:"descriptor"`
}

type Hero struct {
	Badge    string     `json:"badge"`
	Headline string     `json:"headline"`
	Tagline  string     `json:"tagline"`
	Stats    []LiveStat `json:"stats"`
}

// BuildHero returns the static banner copy.
func BuildHero() Hero {
	return Hero{
		Badge:    "Heartwave Live",
		Headline: "Swipe into your next chapter with chemistry-tested matches curated for your vibe.",
		Tagline:  "Say hey to smart recommendations, Spark boosts, and instant IRL plans. Every swipe fuels your personal discovery loop.",
		Stats: []LiveStat{
			{Title: "Sparked tonight", Value: "128", Descriptor: "+12% vs yesterday"},
			{Title: "Active in your orbit", Value: "47", Descriptor: "Within 5 miles"},
		},
	}
}
