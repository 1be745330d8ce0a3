package term

import (
	"errors"
	"fmt"
	"os"

	"github.com/cqroot/prompt"
	"github.com/cqroot/prompt/input"
	"github.com/eiannone/keyboard"
	"github.com/fatih/color"
)

const requiredInputMsg = "This input is required"

func GetRequiredUserStringInput(msg string) (string, error) {
	return GetValidatedUserStringInput(msg, "", func(s string) error {
		if s == "" {
			return errors.New(requiredInputMsg)
		}
		return nil
	})
}

// GetValidatedUserStringInput asks again, with def prefilled, until validate
// accepts the answer.
func GetValidatedUserStringInput(msg, def string, validate func(string) error) (string, error) {
	for {
		res, err := GetUserStringInputWithDefault(msg, def)
		if err != nil {
			return "", fmt.Errorf("failed to get user input: %s", err)
		}

		err = validate(res)
		if err == nil {
			return res, nil
		}
		color.New(color.Bold, ColorHiRed).Printf("🚨 %v\n", err)
	}
}

func GetUserStringInput(msg string) (string, error) {
	return GetUserStringInputWithDefault(msg, "")
}

func GetUserStringInputWithDefault(msg, def string) (string, error) {
	res, err := prompt.New().Ask(msg).Input(def)
	exitOnQuit(err)
	return res, err
}

func GetUserPasswordInput(msg string) (string, error) {
	res, err := prompt.New().Ask(msg).Input("", input.WithEchoMode(input.EchoPassword))
	exitOnQuit(err)
	return res, err
}

func exitOnQuit(err error) {
	if errors.Is(err, prompt.ErrUserQuit) {
		os.Exit(0)
	}
}

func GetUserKeyInput() (rune, error) {
	if err := keyboard.Open(); err != nil {
		return 0, fmt.Errorf("failed to open keyboard: %s", err)
	}
	defer func() {
		_ = keyboard.Close()
	}()

	char, _, err := keyboard.GetKey()
	if err != nil {
		return 0, fmt.Errorf("failed to read keypress: %s", err)
	}

	return char, nil
}

// ConfirmYesNo reads single keypresses until it gets y or n.
func ConfirmYesNo(fmtStr string, fmtArgs ...interface{}) (bool, error) {
	for {
		color.New(ColorHiMagenta, color.Bold).Printf(fmtStr+" (y)es | (n)o", fmtArgs...)
		color.New(ColorHiMagenta, color.Bold).Print("> ")

		char, err := GetUserKeyInput()
		if err != nil {
			return false, fmt.Errorf("failed to get user input: %s", err)
		}
		fmt.Println(string(char))

		if answer, ok := yesNo(char); ok {
			return answer, nil
		}

		fmt.Println()
		color.New(ColorHiRed, color.Bold).Print("Invalid input.\nEnter 'y' for yes or 'n' for no.\n\n")
	}
}

func yesNo(char rune) (answer, ok bool) {
	switch char {
	case 'y', 'Y':
		return true, true
	case 'n', 'N':
		return false, true
	}
	return false, false
}
