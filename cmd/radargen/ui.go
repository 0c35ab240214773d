package main

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
)

// Status messages go to stderr so stdout stays reserved for radar JSON.
var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
)

func printSuccess(format string, a ...interface{}) {
	successColor.Fprintf(color.Error, "✓ "+format+"\n", a...)
}

func printError(format string, a ...interface{}) {
	errorColor.Fprintf(color.Error, "✗ "+format+"\n", a...)
}

func printWarning(format string, a ...interface{}) {
	warningColor.Fprintf(color.Error, "⚠ "+format+"\n", a...)
}

func printInfo(format string, a ...interface{}) {
	infoColor.Fprintf(color.Error, "ℹ "+format+"\n", a...)
}

// pickSheetTab asks which tab of a multi-tab document to read.
func pickSheetTab(current string, tabs []string) (string, error) {
	choice := current
	prompt := &survey.Select{
		Message: "Sheet tab to read:",
		Options: tabs,
		Default: current,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		return "", err
	}
	return choice, nil
}

// reportedError wraps a failure that was already shown to the user, so
// main does not print it a second time.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() error {
	return e.err
}
