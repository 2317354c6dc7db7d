package validate

// profanityTerms is the builtin denylist. It only needs to cover lowercase
// alphabetic forms because every candidate is normalized before lookup.
// Extend per deployment via Options.ExtraDenyTerms.
var profanityTerms = []string{
	"anal", "anus", "arse", "ass", "balls", "bastard", "bitch", "boner",
	"boob", "boobs", "bugger", "bollocks", "cock", "coon", "crap", "cunt",
	"damn", "dick", "dildo", "fag", "faggot", "fart", "fuck", "fucker",
	"hell", "homo", "hooker", "jerk", "jizz", "knob", "minge", "muff",
	"nipple", "nude", "penis", "piss", "poop", "porn", "prick", "pube",
	"pussy", "queer", "rape", "scrotum", "semen", "sex", "shag", "shit",
	"slut", "smut", "spunk", "tit", "tits", "turd", "twat", "vagina",
	"wank", "wanker", "whore", "willy",
}
