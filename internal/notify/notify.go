package notify

import (
	"github.com/gen2brain/beeep"
)

// WritePrompt sends the daily journal reminder as a desktop
// notification.
func WritePrompt() error {
	return beeep.Notify("echoctl", "Time to write your journal!", "")
}

// Info sends a plain informational notification.
func Info(title, message string) error {
	return beeep.Notify(title, message, "")
}
