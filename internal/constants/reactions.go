package constants

// ReactionPalette is the fixed set of emoji the service accepts for
// reactions on activity events and friend habits.
var ReactionPalette = []string{"🔥", "💪", "👏", "❤️", "🎯", "🚀"}
