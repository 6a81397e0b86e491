package hardware

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/wheelwriter/hardware/wheelwriter"
	"github.com/jetsetilly/wheelwriter/resources"
)

// the resource file for the board state
const stateFile = "board"

// State is kept between runs of the program. It is the board's equivalent of
// the values that survive a watchdog reset.
type State struct {
	// the printwheel most recently detected
	Printwheel wheelwriter.Printwheel

	// the number of times the board has been powered on
	PowerOns int

	// the number of soft resets since power on
	Resets int
}

func (s State) String() string {
	return fmt.Sprintf("printwheel %#02x\npowerons %d\nresets %d\n", uint8(s.Printwheel), s.PowerOns, s.Resets)
}

// parseState is the reverse of State.String(). Unrecognised lines are
// ignored so that older files can still be read
func parseState(content string) (State, error) {
	var s State
	for _, l := range strings.Split(content, "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}

		var key string
		var value int
		if _, err := fmt.Sscanf(l, "%s %v", &key, &value); err != nil {
			return State{}, fmt.Errorf("board state: %w", err)
		}

		switch key {
		case "printwheel":
			s.Printwheel = wheelwriter.Printwheel(value)
		case "powerons":
			s.PowerOns = value
		case "resets":
			s.Resets = value
		}
	}
	return s, nil
}

// loadState reads the state from the resource directory. A missing file is
// not an error
func loadState() (State, error) {
	content, err := resources.Read(stateFile)
	if err != nil {
		return State{}, fmt.Errorf("board state: %w", err)
	}
	return parseState(content)
}

func (s State) save() error {
	if err := resources.Write(stateFile, s.String()); err != nil {
		return fmt.Errorf("board state: %w", err)
	}
	return nil
}
