package decline

import "fmt"

// Caption returns the feedback line shown under the controls after n
// attempts. It is indexed independently of the advisory messages.
func Caption(n int, recipient string) string {
	switch {
	case n <= 0:
		return ""
	case n == 1:
		return "Hmm... the No button seems scared of you"
	case n == 2:
		return "It's getting smaller... just like your chances of escaping 😏"
	case n == 3:
		if recipient == "" {
			return "You can't escape love"
		}
		return fmt.Sprintf("You can't escape love, %s", recipient)
	case n == 4:
		return "The No button is having an existential crisis"
	case n == 5:
		return "It's almost invisible now... take the hint?"
	default:
		return fmt.Sprintf("%d attempts — the No button is begging for mercy", n)
	}
}
