package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeSet    Type = "set"
	TypePreset Type = "preset"
	TypeTheme  Type = "theme"
	TypeSound  Type = "sound"
	TypeAdd    Type = "add"
	TypeShow   Type = "show"
	TypeReset  Type = "reset"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// SetArgs adjusts one timer duration field. Field is one of focus,
// break, longbreak, cycles; Value is minutes (or a count for cycles).
type SetArgs struct {
	Field string
	Value int
}

type PresetArgs struct {
	ID string
}

type ThemeArgs struct {
	ID string
}

type SoundArgs struct {
	Enabled bool
}

type AddArgs struct {
	Title string
}

type ShowArgs struct {
	Subject string
}

type Command struct {
	Type   Type
	Raw    string
	Set    *SetArgs
	Preset *PresetArgs
	Theme  *ThemeArgs
	Sound  *SoundArgs
	Add    *AddArgs
	Show   *ShowArgs
}

var setFields = map[string]bool{
	"focus":     true,
	"break":     true,
	"longbreak": true,
	"cycles":    true,
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeSet:
		return parseSet(input, args)
	case TypePreset:
		return parsePreset(input, args)
	case TypeTheme:
		return parseTheme(input, args)
	case TypeSound:
		return parseSound(input, args)
	case TypeAdd:
		return parseAdd(input, args)
	case TypeShow:
		return parseShow(input, args)
	case TypeReset:
		return parseReset(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseSet(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "set requires a field and a value, e.g. set focus 25"}
	}
	field := strings.ToLower(args[0])
	if !setFields[field] {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown setting: %s", field)}
	}
	value, err := strconv.Atoi(args[1])
	if err != nil || value <= 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("set %s needs a positive number", field)}
	}
	return Command{Type: TypeSet, Raw: raw, Set: &SetArgs{Field: field, Value: value}}, nil
}

func parsePreset(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "preset requires an id, e.g. preset classic"}
	}
	return Command{Type: TypePreset, Raw: raw, Preset: &PresetArgs{ID: strings.ToLower(args[0])}}, nil
}

func parseTheme(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "theme requires an id, e.g. theme zen_garden"}
	}
	return Command{Type: TypeTheme, Raw: raw, Theme: &ThemeArgs{ID: strings.ToLower(args[0])}}, nil
}

func parseSound(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "sound requires on or off"}
	}
	switch strings.ToLower(args[0]) {
	case "on":
		return Command{Type: TypeSound, Raw: raw, Sound: &SoundArgs{Enabled: true}}, nil
	case "off":
		return Command{Type: TypeSound, Raw: raw, Sound: &SoundArgs{Enabled: false}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "sound requires on or off"}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Title: title}}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires a subject"}
	}
	return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Subject: strings.ToLower(args[0])}}, nil
}

// parseReset requires an explicit "all" so a stray /reset cannot wipe
// the garden.
func parseReset(raw string, args []string) (Command, error) {
	if len(args) == 0 || strings.ToLower(args[0]) != "all" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "reset requires confirmation: reset all"}
	}
	return Command{Type: TypeReset, Raw: raw}, nil
}
