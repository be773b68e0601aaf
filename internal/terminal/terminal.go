package terminal

import (
	"strings"
	"unicode/utf8"

	"sphere-scene/internal/commands"
)

// ToggleRune is the character of the key that opens and closes the console. It is never typed.
const ToggleRune = '`'

const (
	maxLineLen = 200
	maxHistory = 50
)

// Log is where the console echoes input and command output, and what it shows above the prompt.
type Log interface {
	Log(line string)
	Lines() []string
}

// Terminal is the in-window console: an input line, a submitted-line history and the log tail.
// Lines starting with "cmd " run through the command registry; anything else is echoed with a hint.
// It holds no drawing state; ui.Console draws it and feeds it keys.
type Terminal struct {
	log      Log
	reg      *commands.Registry
	inputBuf string
	open     bool
	history  []string
	recall   int // index into history while browsing, len(history) otherwise
}

// New returns a closed Terminal that logs to log and runs "cmd ..." through reg.
func New(log Log, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen reports whether the console is visible and capturing keys.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Toggle opens or closes the console. Closing keeps the unfinished input.
func (t *Terminal) Toggle() {
	t.open = !t.open
}

// Input returns the current input line.
func (t *Terminal) Input() string {
	return t.inputBuf
}

// Type appends a typed character. Control characters and the toggle key are dropped.
func (t *Terminal) Type(r rune) {
	if !t.open || r == ToggleRune || r < 0x20 || r == 0x7f {
		return
	}
	t.inputBuf += string(r)
}

// Paste appends clipboard text up to the first newline.
func (t *Terminal) Paste(s string) {
	if !t.open {
		return
	}
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}
	t.inputBuf += s
}

// Backspace removes the last rune of the input.
func (t *Terminal) Backspace() {
	if len(t.inputBuf) == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(t.inputBuf)
	t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
}

// Submit logs the input line and runs it. Command errors are logged and returned.
func (t *Terminal) Submit() error {
	line := strings.TrimSpace(t.inputBuf)
	t.inputBuf = ""
	if line == "" {
		return nil
	}
	t.log.Log("> " + line)
	t.remember(line)

	args, isCmd := commands.Parse(line)
	if !isCmd {
		t.log.Log(`commands start with "cmd " (try: cmd help)`)
		return nil
	}
	if err := t.reg.Execute(args); err != nil {
		t.log.Log(err.Error())
		return err
	}
	return nil
}

func (t *Terminal) remember(line string) {
	if n := len(t.history); n == 0 || t.history[n-1] != line {
		t.history = append(t.history, line)
		if len(t.history) > maxHistory {
			t.history = t.history[len(t.history)-maxHistory:]
		}
	}
	t.recall = len(t.history)
}

// HistoryPrev replaces the input with the previous submitted line.
func (t *Terminal) HistoryPrev() {
	if t.recall == 0 {
		return
	}
	t.recall--
	t.inputBuf = t.history[t.recall]
}

// HistoryNext moves forward through history; past the newest entry the input is cleared.
func (t *Terminal) HistoryNext() {
	if t.recall >= len(t.history) {
		return
	}
	t.recall++
	if t.recall == len(t.history) {
		t.inputBuf = ""
		return
	}
	t.inputBuf = t.history[t.recall]
}

// Tail returns the last n log lines, long lines shortened with "...".
func (t *Terminal) Tail(n int) []string {
	lines := t.log.Lines()
	if n >= 0 && len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	for i, line := range lines {
		if len(line) > maxLineLen {
			cut := maxLineLen - 3
			for cut > 0 && !utf8.RuneStart(line[cut]) {
				cut--
			}
			lines[i] = line[:cut] + "..."
		}
	}
	return lines
}
