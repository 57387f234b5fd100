package quiz

import "ConflictBot/model"

// DefaultBank returns the built-in 15-scenario assessment. Option order
// here is canonical; rendering shuffles a copy per send.
func DefaultBank() *Bank {
	bank, err := NewBank(defaultQuestions())
	if err != nil {
		// The built-in content is validated by tests; reaching this
		// means the binary itself is broken.
		panic(err)
	}
	return bank
}

func defaultQuestions() []model.Question {
	return []model.Question{
		{
			ID: 0,
			Prompt: "<b>Scenario 1 — Team Conflict</b>\n\n" +
				"You're working on a critical group project where team tensions are rising. Two members frequently argue over technical decisions, slowing progress and frustrating everyone else. The deadline is fast approaching, and morale is dropping.\n\n" +
				"<b>How do you handle the situation?</b>",
			Options: []model.Option{
				{Label: "Avoid involvement", Category: model.CategoryAvoiding},
				{Label: "Support one person", Category: model.CategoryAccommodating},
				{Label: "Blend approaches", Category: model.CategoryCompromising},
				{Label: "Organize discussion", Category: model.CategoryCollaborating},
				{Label: "Choose best idea yourself", Category: model.CategoryCompeting},
			},
		},
		{
			ID: 1,
			Prompt: "<b>Scenario 2 — Manager's Disagreement</b>\n\n" +
				"You and a colleague disagree about how to divide tasks on a complex assignment. Your manager is unavailable for guidance, and the project is time-sensitive.\n\n" +
				"<b>What is your approach?</b>",
			Options: []model.Option{
				{Label: "Let them take over", Category: model.CategoryAvoiding},
				{Label: "Agree to avoid conflict", Category: model.CategoryAccommodating},
				{Label: "Split tasks equally", Category: model.CategoryCompromising},
				{Label: "Discuss pros/cons of both ideas", Category: model.CategoryCollaborating},
				{Label: "Insist on your idea", Category: model.CategoryCompeting},
			},
		},
		{
			ID: 2,
			Prompt: "<b>Scenario 3 — Disengaged Group Member</b>\n\n" +
				"In a class project, one teammate consistently misses meetings and fails to deliver their part on time, jeopardizing the group's grade. The rest of the team is frustrated, but no one has confronted them directly yet.\n\n" +
				"<b>What do you do?</b>",
			Options: []model.Option{
				{Label: "Ignore their behavior", Category: model.CategoryAvoiding},
				{Label: "Cover for them", Category: model.CategoryAccommodating},
				{Label: "Reassign tasks", Category: model.CategoryCompromising},
				{Label: "Organize team meeting", Category: model.CategoryCollaborating},
				{Label: "Confront them directly", Category: model.CategoryCompeting},
			},
		},
		{
			ID: 3,
			Prompt: "<b>Scenario 4 — Public Mistake</b>\n\n" +
				"During a high-stakes class presentation, you make a factual error that is immediately noticed by a professor. Your group looks concerned, and you feel embarrassed.\n\n" +
				"<b>How do you react?</b>",
			Options: []model.Option{
				{Label: "Step back silently", Category: model.CategoryAvoiding},
				{Label: "Acknowledge mistake quickly", Category: model.CategoryAccommodating},
				{Label: "Clarify error is minor", Category: model.CategoryCompromising},
				{Label: "Correct openly and follow up", Category: model.CategoryCollaborating},
				{Label: "Defend original statement", Category: model.CategoryCompeting},
			},
		},
		{
			ID: 4,
			Prompt: "<b>Scenario 5 — Personal Boundary</b>\n\n" +
				"A classmate often asks to borrow your notes and resources, but rarely reciprocates or helps you in return. It's becoming inconvenient, and you feel the relationship is one-sided.\n\n" +
				"<b>What do you do?</b>",
			Options: []model.Option{
				{Label: "Keep sharing", Category: model.CategoryAvoiding},
				{Label: "Reduce sharing quietly", Category: model.CategoryAccommodating},
				{Label: "Suggest sharing equally", Category: model.CategoryCompromising},
				{Label: "Discuss unfair dynamic", Category: model.CategoryCollaborating},
				{Label: "Refuse to share anymore", Category: model.CategoryCompeting},
			},
		},
		{
			ID: 5,
			Prompt: "<b>Scenario 6 — Overloaded with Tasks</b>\n\n" +
				"You're part of a volunteer team organizing a university event. The team leader assigns you multiple time-consuming tasks while others have lighter workloads. You're feeling overwhelmed and falling behind in your studies.\n\n" +
				"<b>How do you handle the situation?</b>",
			Options: []model.Option{
				{Label: "Accept all tasks quietly", Category: model.CategoryAvoiding},
				{Label: "Hint you're overloaded", Category: model.CategoryAccommodating},
				{Label: "Ask for redistribution", Category: model.CategoryCompromising},
				{Label: "Propose transparent discussion", Category: model.CategoryCollaborating},
				{Label: "Refuse extra tasks", Category: model.CategoryCompeting},
			},
		},
		{
			ID: 6,
			Prompt: "<b>Scenario 7 — Roommate Conflict</b>\n\n" +
				"Your roommate frequently hosts loud gatherings late at night, disrupting your sleep and study schedule. Although you've hinted at your discomfort, nothing has changed.\n\n" +
				"<b>How do you act?</b>",
			Options: []model.Option{
				{Label: "Ignore noise", Category: model.CategoryAvoiding},
				{Label: "Use earplugs", Category: model.CategoryAccommodating},
				{Label: "Propose quiet hours", Category: model.CategoryCompromising},
				{Label: "Express clearly how it affects you", Category: model.CategoryCollaborating},
				{Label: "Demand gatherings stop", Category: model.CategoryCompeting},
			},
		},
		{
			ID: 7,
			Prompt: "<b>Scenario 8 — Unmet Expectations</b>\n\n" +
				"You agreed to collaborate on a side project with a friend, but they consistently miss deadlines, leaving you to complete most of the work alone.\n\n" +
				"<b>What is your response?</b>",
			Options: []model.Option{
				{Label: "Work alone silently", Category: model.CategoryAvoiding},
				{Label: "Do it and hope they improve", Category: model.CategoryAccommodating},
				{Label: "Adjust project scope", Category: model.CategoryCompromising},
				{Label: "Discuss rebalancing tasks", Category: model.CategoryCollaborating},
				{Label: "Continue without them", Category: model.CategoryCompeting},
			},
		},
		{
			ID: 8,
			Prompt: "<b>Scenario 9 — Family Obligation vs Academic Duty</b>\n\n" +
				"Your family asks you to visit for an important celebration, but it coincides with a critical group project deadline. Your team is relying on you.\n\n" +
				"<b>What do you do?</b>",
			Options: []model.Option{
				{Label: "Skip project work", Category: model.CategoryAvoiding},
				{Label: "Go home & rush tasks", Category: model.CategoryAccommodating},
				{Label: "Redistribute tasks", Category: model.CategoryCompromising},
				{Label: "Discuss balance with both sides", Category: model.CategoryCollaborating},
				{Label: "Decline family invite", Category: model.CategoryCompeting},
			},
		},
		{
			ID: 9,
			Prompt: "<b>Scenario 10 — Team Member With Personal Issues</b>\n\n" +
				"A teammate confides in you that they are going through personal difficulties, which is why their performance has declined. The rest of the team is frustrated and unaware of this.\n\n" +
				"<b>What's your approach?</b>",
			Options: []model.Option{
				{Label: "Say nothing", Category: model.CategoryAvoiding},
				{Label: "Quietly cover for them", Category: model.CategoryAccommodating},
				{Label: "Ask team to accommodate them", Category: model.CategoryCompromising},
				{Label: "Encourage transparency", Category: model.CategoryCollaborating},
				{Label: "Tell leader to redistribute tasks", Category: model.CategoryCompeting},
			},
		},
		{
			ID: 10,
			Prompt: "<b>Scenario 11 — Supervisor Micromanagement</b>\n\n" +
				"Your supervisor gives you detailed instructions and constantly checks on your progress, limiting your ability to work independently.\n\n" +
				"<b>What do you do?</b>",
			Options: []model.Option{
				{Label: "Follow exactly", Category: model.CategoryAvoiding},
				{Label: "Follow but show initiative", Category: model.CategoryAccommodating},
				{Label: "Suggest periodic check-ins", Category: model.CategoryCompromising},
				{Label: "Discuss need for autonomy", Category: model.CategoryCollaborating},
				{Label: "Push back and ask full control", Category: model.CategoryCompeting},
			},
		},
		{
			ID: 11,
			Prompt: "<b>Scenario 12 — Handling Criticism</b>\n\n" +
				"During a peer-review session, a fellow student critiques your work very harshly and dismissively, leaving you demotivated. The feedback contains both valid and exaggerated points.\n\n" +
				"<b>How do you respond?</b>",
			Options: []model.Option{
				{Label: "Stay silent", Category: model.CategoryAvoiding},
				{Label: "Thank & avoid them", Category: model.CategoryAccommodating},
				{Label: "Accept valid points only", Category: model.CategoryCompromising},
				{Label: "Engage in dialogue", Category: model.CategoryCollaborating},
				{Label: "Challenge criticism", Category: model.CategoryCompeting},
			},
		},
		{
			ID: 12,
			Prompt: "<b>Scenario 13 — Conflicting Deadlines</b>\n\n" +
				"Two professors assign conflicting deadlines for major assignments. Both require a large amount of work in a short timeframe.\n\n" +
				"<b>How do you handle it?</b>",
			Options: []model.Option{
				{Label: "Prioritize one task", Category: model.CategoryAvoiding},
				{Label: "Focus on easier task first", Category: model.CategoryAccommodating},
				{Label: "Split effort evenly", Category: model.CategoryCompromising},
				{Label: "Discuss extensions with both professors", Category: model.CategoryCollaborating},
				{Label: "Choose most rewarding task", Category: model.CategoryCompeting},
			},
		},
		{
			ID: 13,
			Prompt: "<b>Scenario 14 — Overheard Gossip</b>\n\n" +
				"You overhear classmates spreading false rumors about another student, who is unaware of it. You dislike gossip but don't know whether to intervene.\n\n" +
				"<b>What do you do?</b>",
			Options: []model.Option{
				{Label: "Ignore it", Category: model.CategoryAvoiding},
				{Label: "Distance yourself silently", Category: model.CategoryAccommodating},
				{Label: "Talk privately to gossiper", Category: model.CategoryCompromising},
				{Label: "Warn the person targeted", Category: model.CategoryCollaborating},
				{Label: "Confront gossipers directly", Category: model.CategoryCompeting},
			},
		},
		{
			ID: 14,
			Prompt: "<b>Scenario 15 — Resource Allocation</b>\n\n" +
				"Your team has limited budget/resources, and two project ideas are competing for them. Both sides are passionate and won't easily compromise.\n\n" +
				"<b>How do you respond?</b>",
			Options: []model.Option{
				{Label: "Avoid the argument", Category: model.CategoryAvoiding},
				{Label: "Support one project quietly", Category: model.CategoryAccommodating},
				{Label: "Split budget evenly", Category: model.CategoryCompromising},
				{Label: "Facilitate group negotiation", Category: model.CategoryCollaborating},
				{Label: "Push for your preferred project", Category: model.CategoryCompeting},
			},
		},
	}
}
