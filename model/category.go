package model

// Category is one of the five conflict-resolution style codes attached
// to every answer option. Answer events carry the code itself, never the
// position of the tapped button, so option order can be shuffled per
// render without touching scoring.
type Category string

const (
	CategoryAvoiding      Category = "A"
	CategoryAccommodating Category = "B"
	CategoryCompromising  Category = "C"
	CategoryCollaborating Category = "D"
	CategoryCompeting     Category = "E"
)

// Categories lists every legal code in its fixed order. Scoring iterates
// this slice, so the order doubles as the tie-break rule: the earliest
// tied code wins.
var Categories = []Category{
	CategoryAvoiding,
	CategoryAccommodating,
	CategoryCompromising,
	CategoryCollaborating,
	CategoryCompeting,
}

var categoryNames = map[Category]string{
	CategoryAvoiding:      "Avoiding",
	CategoryAccommodating: "Accommodating",
	CategoryCompromising:  "Compromising",
	CategoryCollaborating: "Collaborating",
	CategoryCompeting:     "Competing",
}

var categoryDescriptions = map[Category]string{
	CategoryAvoiding:      "❌ <b>Avoiding</b>: You prefer to sidestep conflict, hoping it resolves itself or disappears.\n<i>Useful when issue is trivial or tensions are high.</i>",
	CategoryAccommodating: "🤝 <b>Accommodating</b>: You prioritize relationships, often yielding to others.\n<i>Useful when preserving harmony matters more than winning.</i>",
	CategoryCompromising:  "⚖️ <b>Compromising</b>: You seek a quick, fair middle ground.\n<i>Useful when time is limited or both sides hold equal power.</i>",
	CategoryCollaborating: "🤔 <b>Collaborating</b>: You aim for a win-win by deeply exploring all needs.\n<i>Useful for complex, long-term solutions.</i>",
	CategoryCompeting:     "🏆 <b>Competing</b>: You assert your position to achieve your goal.\n<i>Useful when quick action is critical or principle is at stake.</i>",
}

var categoryAdvice = map[Category]string{
	CategoryAvoiding:      "• Use avoiding when issues are minor.\n• Don't avoid important conflicts too often.\n• Try expressing concerns earlier.",
	CategoryAccommodating: "• Good for relationships, but don't neglect your needs.\n• Assert yourself when it matters.\n• Balance harmony with fairness.",
	CategoryCompromising:  "• Works well when time is short.\n• Aim for compromise that feels fair.\n• Use collaboration for complex problems.",
	CategoryCollaborating: "• Excellent for strong partnerships.\n• Invest time to understand all perspectives.\n• Watch for over-analysis paralysis.",
	CategoryCompeting:     "• Useful when urgent action is key.\n• Ensure not to alienate others.\n• Be open to other views when time permits.",
}

// Valid reports whether c is one of the five legal codes.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// Name returns the human-readable style name.
func (c Category) Name() string {
	return categoryNames[c]
}

// Description returns the HTML description shown to users.
func (c Category) Description() string {
	return categoryDescriptions[c]
}

// Advice returns the tailored tips shown with a completed result.
func (c Category) Advice() string {
	return categoryAdvice[c]
}
