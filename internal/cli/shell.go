package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/RevCBH/onionportal/internal/config"
	"github.com/RevCBH/onionportal/internal/portal"
)

// Mode selects how the shell interacts with the user.
type Mode string

const (
	// ModeMenu loops over the interactive menu until the user exits.
	ModeMenu Mode = "menu"
	// ModeOnce resolves persistence, starts the portal, and exits.
	ModeOnce Mode = "once"
	// ModeAuto picks menu on a terminal and once otherwise.
	ModeAuto Mode = "auto"
)

// ErrInputClosed is returned when input ends while an answer is required.
var ErrInputClosed = errors.New("input not available")

// failurePolicy decides what an operation failure means for the shell.
type failurePolicy int

const (
	// policyAbort ends the run with a non-zero exit status.
	policyAbort failurePolicy = iota
	// policyRecover keeps the shell running; the failure was already shown.
	policyRecover
)

func (p failurePolicy) handle(err error) error {
	if err == nil || p == policyRecover {
		return nil
	}
	return &reportedError{err: err}
}

// MenuChoice is one parsed line of menu input.
type MenuChoice int

const (
	ChoiceUnrecognized MenuChoice = iota
	ChoiceStartPersistent
	ChoiceStartEphemeral
	ChoiceConnect
	ChoiceStop
	ChoiceRemoveAll
	ChoiceExit
)

var menuWords = map[string]MenuChoice{
	"1": ChoiceStartPersistent, "persistent": ChoiceStartPersistent, "persist": ChoiceStartPersistent,
	"2": ChoiceStartEphemeral, "ephemeral": ChoiceStartEphemeral,
	"3": ChoiceConnect, "connect": ChoiceConnect,
	"4": ChoiceStop, "stop": ChoiceStop,
	"5": ChoiceRemoveAll, "remove": ChoiceRemoveAll, "rm": ChoiceRemoveAll,
	"6": ChoiceExit,
}

var exitWords = map[string]bool{"exit": true, "quit": true, "q": true, "salir": true}

// ParseMenuChoice maps a line of input to a menu choice.
func ParseMenuChoice(line string) MenuChoice {
	word := strings.ToLower(strings.TrimSpace(line))
	if exitWords[word] {
		return ChoiceExit
	}
	if c, ok := menuWords[word]; ok {
		return c
	}
	return ChoiceUnrecognized
}

var mainMenu = []menuItem{
	{"1", "Start with saved sessions (persistent)"},
	{"2", "Start an ephemeral session"},
	{"3", "Connect to an existing container"},
	{"4", "Stop the portal"},
	{"5", "Remove all portal containers"},
	{"6", "Exit"},
}

var persistenceMenu = []menuItem{
	{"1", "Save sessions to disk (persistent)"},
	{"2", "Ephemeral session (nothing saved)"},
}

// runRoot dispatches the root command to the selected shell mode.
func (a *App) runRoot(ctx context.Context) error {
	mode := Mode(a.mode)
	switch mode {
	case ModeMenu, ModeOnce:
	case ModeAuto, "":
		mode = ModeOnce
		if isTerminal(a.stdin) {
			mode = ModeMenu
		}
	default:
		return fmt.Errorf("unknown mode %q (want menu, once, or auto)", a.mode)
	}

	s, err := a.wire()
	if err != nil {
		return err
	}
	defer s.Close()

	if mode == ModeMenu {
		return a.runMenu(ctx, s)
	}
	return a.runOnce(ctx, s, nil)
}

// runMenu shows the menu and dispatches choices until the user exits or
// input ends. Operation failures are reported and the loop continues.
func (a *App) runMenu(ctx context.Context, s *session) error {
	for {
		a.clearScreen()
		renderMenu(a.stdout, s.styles, "O N I O N   P O R T A L", s.cfg.AccessURL(), mainMenu)

		line, err := s.prompt.Prompt("Select an option [1-6]: ")
		if err != nil {
			return endOfInput(s, err)
		}

		choice := ParseMenuChoice(line)
		if choice == ChoiceExit {
			return nil
		}
		err = a.dispatch(ctx, s, choice, line)
		if errors.Is(err, ErrInterrupted) {
			return policyAbort.handle(err)
		}
		if err := policyRecover.handle(err); err != nil {
			return err
		}

		again, err := s.prompt.Prompt("Press Enter to return to the menu, or type q to exit: ")
		if err != nil {
			return endOfInput(s, err)
		}
		if ParseMenuChoice(again) == ChoiceExit {
			return nil
		}
	}
}

// endOfInput ends the menu. Exhausted input is a clean exit; an interrupt
// or read failure is reported and ends the run non-zero.
func endOfInput(s *session, err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return policyAbort.handle(inputFailure(s, err, "to choose an option"))
}

// inputFailure reports why an answer could not be read and returns the
// cause, with ErrInputClosed for exhausted input.
func inputFailure(s *session, err error, purpose string) error {
	switch {
	case errors.Is(err, io.EOF):
		err = fmt.Errorf("%w %s", ErrInputClosed, purpose)
		s.report.Error(err.Error())
	case errors.Is(err, ErrInterrupted):
		s.report.Error("Operation cancelled by user.")
	default:
		s.report.Error(fmt.Sprintf("Could not read input: %v", err))
	}
	return err
}

func (a *App) dispatch(ctx context.Context, s *session, choice MenuChoice, line string) error {
	switch choice {
	case ChoiceStartPersistent:
		return s.launcher.Start(ctx, true, nil)
	case ChoiceStartEphemeral:
		return s.launcher.Start(ctx, false, nil)
	case ChoiceConnect:
		return s.launcher.Connect(ctx, promptSelector(s))
	case ChoiceStop:
		return s.launcher.Stop(ctx)
	case ChoiceRemoveAll:
		return s.launcher.RemoveAll(ctx)
	default:
		s.report.Error(fmt.Sprintf("Unrecognized option %q.", strings.TrimSpace(line)))
		return nil
	}
}

// runOnce performs the guided single start. Any failing step ends the run.
// persist overrides the environment and prompt when non-nil.
func (a *App) runOnce(ctx context.Context, s *session, persist *bool) error {
	if err := s.launcher.CheckRuntime(); err != nil {
		return policyAbort.handle(err)
	}

	handler := NewInterruptHandler(nil, s.logger)
	handler.OnInterrupt(func() {
		s.report.Error("Operation cancelled by user.")
		a.exit(1)
	})
	handler.Start()
	defer handler.Stop()

	steps := portal.NewStepper(s.report)

	usePersistence := false
	if persist != nil {
		usePersistence = *persist
	} else {
		resolved, err := a.resolvePersistence(s)
		if err != nil {
			return policyAbort.handle(err)
		}
		usePersistence = resolved
	}

	return policyAbort.handle(s.launcher.Start(ctx, usePersistence, steps))
}

// resolvePersistence answers from ONION_PORTAL_PERSISTENCE when set,
// otherwise asks until a recognised answer arrives. A failed read has
// already been reported when it returns.
func (a *App) resolvePersistence(s *session) (bool, error) {
	if raw := s.cfg.Persistence; raw != "" {
		persist, ok := config.ParsePersistence(raw)
		if !ok {
			s.report.Info(fmt.Sprintf("Unrecognized %s value %q; using persistent sessions.", config.EnvPersistence, raw))
			return true, nil
		}
		return persist, nil
	}

	renderMenu(a.stdout, s.styles, "O N I O N   P O R T A L", "Session mode", persistenceMenu)
	for {
		line, err := s.prompt.Prompt("Select your mode [1/2]: ")
		if err != nil {
			return false, inputFailure(s, err, "to select a mode")
		}
		if persist, ok := config.ParsePersistence(line); ok {
			return persist, nil
		}
		s.report.Info("Unrecognized answer. Use 1 for persistent sessions or 2 for an ephemeral session.")
	}
}

// promptSelector lists names and reads the user's pick, reporting a
// failed read.
func promptSelector(s *session) portal.Selector {
	return func(names []string) (string, error) {
		s.report.Choices(names)
		line, err := s.prompt.Prompt("Select a container (number or name): ")
		if err != nil {
			return "", inputFailure(s, err, "to select a container")
		}
		return line, nil
	}
}

func (a *App) clearScreen() {
	if isTerminal(a.stdout) {
		fmt.Fprint(a.stdout, "\033[H\033[2J")
	}
}
