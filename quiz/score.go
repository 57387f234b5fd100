package quiz

import "ConflictBot/model"

// Score tallies the answer history and returns the dominant category.
// Ties are broken by the fixed order of model.Categories: the first code
// reaching the maximum count wins, so equal inputs always yield equal
// output. ok is false when answers is empty.
func Score(answers []model.Category) (model.Category, map[model.Category]int, bool) {
	tallies := make(map[model.Category]int, len(model.Categories))
	for _, c := range answers {
		tallies[c]++
	}
	if len(answers) == 0 {
		return "", tallies, false
	}

	var best model.Category
	bestCount := -1
	for _, c := range model.Categories {
		if tallies[c] > bestCount {
			best = c
			bestCount = tallies[c]
		}
	}
	return best, tallies, true
}
