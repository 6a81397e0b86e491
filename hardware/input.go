package hardware

import (
	"github.com/jetsetilly/wheelwriter/logger"
	"github.com/jetsetilly/wheelwriter/ui"
)

// handleInput takes at most one input from the GUI. nothing is taken until the
// keyboard and bus queues are empty so that a burst of key presses cannot
// overflow them. returns true if an input was taken
func (con *Console) handleInput() bool {
	if con.u == nil {
		return false
	}
	if con.Receiver.Available() || con.Bus.Available() {
		return false
	}

	select {
	default:
		return false
	case inp := <-con.u.UserInput:
		switch inp.Action {
		case ui.PS2Key:
			if con.Keyboard != nil {
				con.Keyboard.Transmit(inp.Data...)
			}
		case ui.TypewriterKey:
			for _, c := range inp.Data {
				con.Typewriter.Strike(c)
			}
		case ui.InsertPaper:
			logger.Log(con.ctx, "board", "new sheet of paper")
			con.Typewriter.InsertPaper()
		}
	}
	return true
}
