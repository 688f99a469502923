package style

import (
	"fmt"

	"github.com/arthur-debert/rooconf/pkg/errors"
	"github.com/pterm/pterm"
)

// Prefix renders a pterm prefix label, e.g. " ERROR "
func Prefix(p pterm.PrefixPrinter) string {
	return p.Prefix.Style.Sprint(" " + p.Prefix.Text + " ")
}

// SuccessLine renders msg after the pterm success prefix
func SuccessLine(msg string) string {
	return fmt.Sprintf("%s %s", Prefix(pterm.Success), msg)
}

// InfoLine renders msg after the pterm info prefix
func InfoLine(msg string) string {
	return fmt.Sprintf("%s %s", Prefix(pterm.Info), msg)
}

// WarningLine renders msg after the pterm warning prefix
func WarningLine(msg string) string {
	return fmt.Sprintf("%s %s", Prefix(pterm.Warning), pterm.Warning.MessageStyle.Sprint(msg))
}

// ErrorLine renders an error message. Coded errors show their code.
func ErrorLine(err error) string {
	if err == nil {
		return ""
	}
	msg := errors.UserMessage(err)
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		return fmt.Sprintf("%s [%s] %s",
			Prefix(pterm.Error),
			MutedStyle.Render(string(code)),
			pterm.Error.MessageStyle.Sprint(msg))
	}
	return fmt.Sprintf("%s %s", Prefix(pterm.Error), pterm.Error.MessageStyle.Sprint(msg))
}
