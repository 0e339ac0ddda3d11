package question

import "github.com/hireloop/intervu-backend/internal/model"

// bankEntry is a question template in the static bank. Static questions are
// free-text only, so there is no grading metadata beyond keywords.
type bankEntry struct {
	text     string
	keywords []string
}

var easyBank = []bankEntry{
	{
		text:     "Tell me about yourself and why you're interested in this role.",
		keywords: []string{"experience", "skills", "interest", "passion", "background"},
	},
	{
		text:     "What are your greatest strengths and how do they relate to this position?",
		keywords: []string{"strengths", "skills", "advantage", "good at", "excel"},
	},
	{
		text:     "Describe a typical day in your current or most recent role.",
		keywords: []string{"daily", "routine", "responsibilities", "tasks", "workflow"},
	},
	{
		text:     "What motivates you to do your best work?",
		keywords: []string{"motivation", "drive", "inspiration", "passion", "goal"},
	},
}

var mediumBank = []bankEntry{
	{
		text:     "Describe a challenging project you worked on. What was your approach and what did you learn?",
		keywords: []string{"challenge", "project", "approach", "solution", "learned", "overcome"},
	},
	{
		text:     "How do you handle working under pressure or tight deadlines?",
		keywords: []string{"pressure", "deadline", "stress", "manage", "prioritize", "organize"},
	},
	{
		text:     "Tell me about a time when you had to work with a difficult team member. How did you handle it?",
		keywords: []string{"difficult", "team", "conflict", "resolution", "communication", "collaboration"},
	},
	{
		text:     "Describe a situation where you had to learn a new technology or skill quickly. How did you approach it?",
		keywords: []string{"learn", "technology", "skill", "quickly", "adapt", "approach"},
	},
}

var hardBank = []bankEntry{
	{
		text:     "Design a system that can handle 1 million concurrent users. Walk me through your architecture decisions and trade-offs.",
		keywords: []string{"scalability", "architecture", "load balancing", "database", "caching", "microservices", "distributed"},
	},
	{
		text:     "You're leading a project that's behind schedule and over budget. The stakeholders are unhappy. How do you turn this around?",
		keywords: []string{"leadership", "project management", "stakeholders", "problem solving", "communication", "strategy"},
	},
	{
		text:     "You notice that a critical system in production is performing poorly. Walk me through your debugging and optimization process.",
		keywords: []string{"debugging", "performance", "optimization", "monitoring", "analysis", "bottleneck"},
	},
	{
		text:     "Design a recommendation system for an e-commerce platform. How would you handle cold start problems and ensure relevance?",
		keywords: []string{"recommendation", "algorithm", "machine learning", "cold start", "relevance", "data"},
	},
}

// bankFor returns the static bank for a difficulty tier.
func bankFor(d model.Difficulty) []bankEntry {
	switch d {
	case model.DifficultyMedium:
		return mediumBank
	case model.DifficultyHard:
		return hardBank
	default:
		return easyBank
	}
}
