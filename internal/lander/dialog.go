package lander

// Dialog is a fixed message shown to the player.
type Dialog struct {
	Title string
	Body  string
}

const welcomeBody = "Welcome to The Lunar Lander!\n" +
	"Press 'a' and 'd' to tilt the lander and raise the thrust bar\n" +
	"with 'w' and 's' to slow your fall."

// WelcomeDialog is shown before the first ignition.
var WelcomeDialog = Dialog{
	Title: "Welcome!",
	Body:  welcomeBody,
}

const (
	successTitle = "Mission Success!"
	failureTitle = "Mission Failed!"
	letDown      = "You've let NASA down, you've let your family down...\n" +
		"But most of all, you've let yourself down."
)

var outcomeDialogs = map[Outcome]Dialog{
	OutcomeSuccess: {
		Title: successTitle,
		Body:  "The Eagle has landed!",
	},
	OutcomeHardLanding: {
		Title: failureTitle,
		Body:  "You crashed and died.\n\n" + letDown,
	},
	OutcomeBadAngle: {
		Title: failureTitle,
		Body:  "You didn't land straight,\nand therefore crashed and died.\n\nWell done!",
	},
	OutcomeOutOfFuel: {
		Title: failureTitle,
		Body:  "You ran out of fuel then crashed and died.\n\n" + letDown,
	},
}

// DialogFor returns the message for a flight outcome. Aborted flights have
// no message, so ok is false for OutcomeNone.
func DialogFor(o Outcome) (d Dialog, ok bool) {
	d, ok = outcomeDialogs[o]
	return d, ok
}
