package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Set    func(SetArgs) (Result, error)
	Preset func(PresetArgs) (Result, error)
	Theme  func(ThemeArgs) (Result, error)
	Sound  func(SoundArgs) (Result, error)
	Add    func(AddArgs) (Result, error)
	Show   func(ShowArgs) (Result, error)
	Reset  func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeSet:
		if handlers.Set == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "set handler not configured"}
		}
		return handlers.Set(*cmd.Set)
	case TypePreset:
		if handlers.Preset == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "preset handler not configured"}
		}
		return handlers.Preset(*cmd.Preset)
	case TypeTheme:
		if handlers.Theme == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "theme handler not configured"}
		}
		return handlers.Theme(*cmd.Theme)
	case TypeSound:
		if handlers.Sound == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "sound handler not configured"}
		}
		return handlers.Sound(*cmd.Sound)
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeShow:
		if handlers.Show == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "show handler not configured"}
		}
		return handlers.Show(*cmd.Show)
	case TypeReset:
		if handlers.Reset == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "reset handler not configured"}
		}
		return handlers.Reset()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
