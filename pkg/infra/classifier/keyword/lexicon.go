package keyword

// Category lexicons with tiered weights. Mirrors the wordlists the
// service was originally tuned with; the overlap between the two
// categories (e.g. "bitch") is intentional.

func harassmentLexicon() map[string]float64 {
	lexicon := map[string]float64{}
	add(lexicon, severeWeight, "rape", "kill", "die", "nigga", "nigger", "cunt", "fag", "faggot")
	add(lexicon, strongWeight, "fuck", "shit", "asshole", "bastard")
	add(lexicon, baseWeight,
		"hate", "stupid", "idiot", "ugly", "loser", "damn", "bitch",
		"moron", "retard", "scum", "trash", "worthless", "suck",
		"dick", "cock", "pussy", "tits",
	)
	return lexicon
}

func misogynyLexicon() map[string]float64 {
	lexicon := map[string]float64{}
	add(lexicon, severeWeight, "rape", "cunt", "slut", "whore", "bitch")
	add(lexicon, strongWeight, "tits", "pussy")
	add(lexicon, baseWeight,
		"woman", "women", "girl", "female", "kitchen", "sandwich", "weak",
		"feminazi", "emotional", "hysterical",
	)
	return lexicon
}

func add(lexicon map[string]float64, weight float64, words ...string) {
	for _, w := range words {
		lexicon[w] = weight
	}
}
