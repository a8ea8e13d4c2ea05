package tui

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"arrowboard/pkg/engine/input"
	"arrowboard/pkg/engine/terminal"
	"arrowboard/pkg/engine/world"
	"arrowboard/pkg/game/gameplay"
	"arrowboard/pkg/game/renderer"
	"arrowboard/pkg/game/state"
)

// Icon constants
const (
	IconChecker = "●"
	IconNoArrow = "·"
)

const (
	// Columns per cell: arrow plus a space either side
	CellWidth = 3

	// Lines needed outside the board:
	// - Title + blank (2)
	// - Status line + mode line (2)
	// - Messages pane (header + 5 messages + footer = 7)
	// - Help line (1)
	ReservedLines = 12
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorDarkSquare  color.Style
	colorLightSquare color.Style
	colorChecker     color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorSubtle      color.Style
	colorLabels      map[world.Label]color.Style

	out     io.Writer
	logFile string

	// Buffered so observers never block the simulation
	redraw chan struct{}
}

// New creates a new TUI renderer. Log output goes to logFile while it runs.
func New(logFile string) *TUIRenderer {
	return &TUIRenderer{
		out:     os.Stdout,
		logFile: logFile,
		redraw:  make(chan struct{}, 1),
	}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() error {
	t.colorDarkSquare = color.Style{color.FgWhite, color.BgBlack}
	t.colorLightSquare = color.Style{color.FgBlack, color.BgWhite}
	t.colorChecker = color.Style{color.FgBlack, color.BgYellow, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}

	t.colorLabels = map[world.Label]color.Style{
		world.LeadsOffBoard:    {color.FgRed, color.OpBold},
		world.OnCycle:          {color.FgGreen, color.OpBold},
		world.LeadsIntoCycle:   {color.FgYellow, color.OpBold},
		world.NotOnCurrentPath: {color.FgCyan},
	}
	return nil
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleCellDark:
		return t.colorDarkSquare.Sprint(text)
	case renderer.StyleCellLight:
		return t.colorLightSquare.Sprint(text)
	case renderer.StyleChecker:
		return t.colorChecker.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleLeadsOffBoard:
		return t.colorLabels[world.LeadsOffBoard].Sprint(text)
	case renderer.StyleOnCycle:
		return t.colorLabels[world.OnCycle].Sprint(text)
	case renderer.StyleLeadsIntoCycle:
		return t.colorLabels[world.LeadsIntoCycle].Sprint(text)
	case renderer.StyleNotOnPath:
		return t.colorLabels[world.NotOnCurrentPath].Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message and renders its markup
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	var sb strings.Builder
	for _, seg := range renderer.ParseMarkup(msg) {
		sb.WriteString(t.StyleText(seg.Text, seg.Style))
	}
	return sb.String()
}

func (t *TUIRenderer) requestRedraw() {
	select {
	case t.redraw <- struct{}{}:
	default:
	}
}

func (t *TUIRenderer) OnCellsBuilt(grid *world.Grid)                              { t.requestRedraw() }
func (t *TUIRenderer) OnCursorMoved(cell world.Cell)                              { t.requestRedraw() }
func (t *TUIRenderer) OnClassificationChanged(cell world.Cell, label world.Label) { t.requestRedraw() }
func (t *TUIRenderer) OnDisplayMode(label world.Label)                            { t.requestRedraw() }

// Run draws the board and handles key presses until the user quits
func (t *TUIRenderer) Run(ctrl renderer.Controller) error {
	if t.logFile != "" {
		f, err := os.OpenFile(t.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
		defer log.SetOutput(os.Stderr)
	}

	keys, err := input.NewKeyReader(os.Stdin)
	if err != nil {
		return err
	}
	defer keys.Close()

	type keyEvent struct {
		raw input.RawInput
		err error
	}
	events := make(chan keyEvent)
	go func() {
		for {
			raw, err := keys.ReadKey()
			events <- keyEvent{raw, err}
			if err != nil {
				return
			}
		}
	}()

	for {
		t.draw(ctrl)

		select {
		case <-t.redraw:
		case ev := <-events:
			if ev.err != nil {
				return fmt.Errorf("read key: %w", ev.err)
			}
			intent := input.MapToIntent(input.NewDebouncedInput(ev.raw))
			if gameplay.ProcessIntent(ctrl, intent) {
				keys.Close()
				fmt.Fprint(t.out, "\033[H\033[2J")
				fmt.Fprintln(t.out, gotext.Get("GOODBYE"))
				return nil
			}
		}
	}
}

func (t *TUIRenderer) draw(ctrl renderer.Controller) {
	width, height := terminal.GetSize()
	var frame string
	ctrl.View(func(b *state.Board) {
		frame = t.Frame(b, width, height)
	})
	fmt.Fprint(t.out, "\033[H\033[2J"+frame)
}

// Frame renders the whole screen for b. Lines end in "\r\n" because the
// terminal is in raw mode.
func (t *TUIRenderer) Frame(b *state.Board, width, height int) string {
	var lines []string

	lines = append(lines, t.colorAction.Sprint(gotext.Get("TITLE")), "")

	if b.Grid != nil && terminal.Fits(b.Size(), CellWidth, ReservedLines, width, height) {
		lines = append(lines, t.boardLines(b)...)
	} else {
		lines = append(lines, t.colorSubtle.Sprint(fmt.Sprintf(gotext.Get("BOARD_TOO_LARGE"), b.Size(), b.Size())))
	}

	lines = append(lines, t.statusLine(b), t.modeLine(b))
	lines = append(lines, t.messagesPane(b, width)...)
	lines = append(lines, t.helpLine())

	return strings.Join(lines, "\r\n") + "\r\n"
}

func (t *TUIRenderer) boardLines(b *state.Board) []string {
	cursor := b.CursorCell()
	lines := make([]string, 0, b.Size())

	for row := 0; row < b.Size(); row++ {
		var sb strings.Builder
		for col := 0; col < b.Size(); col++ {
			sb.WriteString(t.renderCell(b, b.Grid.GetCell(row, col), cursor))
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// renderCell draws one square: the arrow, coloured by the cell's label,
// or the checker if it is on this cell
func (t *TUIRenderer) renderCell(b *state.Board, c, cursor *world.Cell) string {
	if c == cursor {
		return t.colorChecker.Sprint(" " + IconChecker + " ")
	}

	square := t.colorLightSquare
	if (c.Row+c.Col)%2 == 0 {
		square = t.colorDarkSquare
	}

	icon := c.Direction.Arrow()
	if !c.Direction.IsValid() {
		icon = IconNoArrow
	}

	if labelStyle, ok := t.colorLabels[b.Path.DisplayLabel(c)]; ok {
		// Label colour on the square's background
		style := color.Style{labelStyle[0], square[1]}
		style = append(style, labelStyle[2:]...)
		return style.Sprint(" " + icon + " ")
	}
	return square.Sprint(" " + icon + " ")
}

func (t *TUIRenderer) statusLine(b *state.Board) string {
	status := gotext.Get("STATUS_IDLE")
	if b.Running {
		status = gotext.Get("STATUS_RUNNING")
	}

	parts := []string{
		fmt.Sprintf(gotext.Get("BOARD_SIZE"), b.Size(), b.Size()),
		fmt.Sprintf(gotext.Get("PENDING_SIZE"), b.PendingSize),
		fmt.Sprintf(gotext.Get("STEPS"), b.Steps),
		status,
	}
	return strings.Join(parts, t.colorSubtle.Sprint("  |  "))
}

func (t *TUIRenderer) modeLine(b *state.Board) string {
	return t.colorSubtle.Sprint(gotext.Get("MODE")+" ") + t.FormatText(renderer.LabelMarkup(b.Mode))
}

// messagesPane renders the messages log pane
func (t *TUIRenderer) messagesPane(b *state.Board, width int) []string {
	label := " " + gotext.Get("MESSAGES") + " "
	labelLen := len([]rune(label))
	sideLen := (width - labelLen) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	rightLen := width - sideLen - labelLen
	if rightLen < 1 {
		rightLen = 1
	}

	lines := []string{t.colorSubtle.Sprint(strings.Repeat("─", sideLen) + label + strings.Repeat("─", rightLen))}
	if len(b.Messages) == 0 {
		lines = append(lines, t.colorSubtle.Sprint("  "+gotext.Get("NO_MESSAGES")))
	}
	for _, msg := range b.Messages {
		lines = append(lines, "  "+t.FormatText(msg.Text))
	}
	lines = append(lines, t.colorSubtle.Sprint(strings.Repeat("─", width)))
	return lines
}

// helpLine lists the key for each action, first letter highlighted
func (t *TUIRenderer) helpLine() string {
	actions := []input.Action{input.ActionPlay, input.ActionStop, input.ActionReset, input.ActionGrow, input.ActionShrink, input.ActionDump, input.ActionQuit}
	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		name := input.ActionName(a)
		parts = append(parts, t.colorActionShort.Sprint(input.KeyHelp(a))+" "+t.colorAction.Sprint(name))
	}
	return strings.Join(parts, "  ")
}
