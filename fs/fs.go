package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

var HomeDir string
var HomeSocialcalDir string
var HomeAuthPath string
var LogPath string

// Init resolves and creates the per-user state dir. Development builds use
// a separate dir so a local backend never sees a production token.
func Init(development bool) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("couldn't find home dir: %v", err)
	}

	return InitAt(home, development)
}

func InitAt(home string, development bool) error {
	HomeDir = home

	if development {
		HomeSocialcalDir = filepath.Join(home, ".socialcal-home-dev")
	} else {
		HomeSocialcalDir = filepath.Join(home, ".socialcal-home")
	}

	err := os.MkdirAll(HomeSocialcalDir, 0700)
	if err != nil {
		return fmt.Errorf("error creating %s: %v", HomeSocialcalDir, err)
	}

	HomeAuthPath = filepath.Join(HomeSocialcalDir, "auth.json")
	LogPath = filepath.Join(HomeSocialcalDir, "socialcal.log")

	return nil
}

func FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	} else if os.IsNotExist(err) {
		return false, nil
	} else {
		return false, fmt.Errorf("error checking if file exists: %v", err)
	}
}
