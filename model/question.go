package model

// Option pairs the label shown on a keyboard button with the style
// category it maps to.
type Option struct {
	Label    string
	Category Category
}

// Question is one entry of the static question bank. ID is its 0-based
// position in the bank.
type Question struct {
	ID      int
	Prompt  string
	Options []Option
}
