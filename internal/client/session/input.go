package session

// Input is a single-line text buffer with a cursor. Cursor is a rune index
// in [0, len(Buffer)]; edits happen at the cursor.
type Input struct {
	Buffer []rune
	Cursor int
}

// NewInput returns an Input holding s with the cursor at the end.
func NewInput(s string) Input {
	var in Input
	in.Set(s)
	return in
}

// Insert puts r before the cursor and advances the cursor.
func (in *Input) Insert(r rune) {
	in.clamp()
	buf := make([]rune, 0, len(in.Buffer)+1)
	buf = append(buf, in.Buffer[:in.Cursor]...)
	buf = append(buf, r)
	buf = append(buf, in.Buffer[in.Cursor:]...)
	in.Buffer = buf
	in.Cursor++
}

// Backspace deletes the rune before the cursor.
func (in *Input) Backspace() {
	in.clamp()
	if in.Cursor == 0 {
		return
	}
	buf := make([]rune, 0, len(in.Buffer)-1)
	buf = append(buf, in.Buffer[:in.Cursor-1]...)
	buf = append(buf, in.Buffer[in.Cursor:]...)
	in.Buffer = buf
	in.Cursor--
}

func (in *Input) Left() {
	in.clamp()
	if in.Cursor > 0 {
		in.Cursor--
	}
}

func (in *Input) Right() {
	in.clamp()
	if in.Cursor < len(in.Buffer) {
		in.Cursor++
	}
}

// Set replaces the buffer and moves the cursor to the end.
func (in *Input) Set(s string) {
	in.Buffer = []rune(s)
	in.Cursor = len(in.Buffer)
}

func (in Input) String() string {
	return string(in.Buffer)
}

// Edit applies an editing event and reports whether it was one.
func (in *Input) Edit(ev Event) bool {
	switch ev.Kind {
	case EventInsert:
		in.Insert(ev.Rune)
	case EventBackspace:
		in.Backspace()
	case EventLeft:
		in.Left()
	case EventRight:
		in.Right()
	default:
		return false
	}
	return true
}

func (in *Input) clamp() {
	if in.Cursor < 0 {
		in.Cursor = 0
	}
	if in.Cursor > len(in.Buffer) {
		in.Cursor = len(in.Buffer)
	}
}
