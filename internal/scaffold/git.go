package scaffold

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v6"
	gitconfig "github.com/go-git/go-git/v6/config"
	"github.com/xylo-build/xylo/internal/msg"
)

var remoteShortcuts = map[string]string{
	"gh:": "https://github.com/",
	"gl:": "https://gitlab.com/",
	"bb:": "https://bitbucket.org/",
	"sr:": "https://git.sr.ht/",
	"cb:": "https://codeberg.org/",
}

const gitPrefix = "git:"

// ExpandRemote turns a shortcut like gh:someone/something into a clone URL.
// Anything else is returned as is, minus an optional git: prefix.
func ExpandRemote(remote string) string {
	if strings.HasPrefix(remote, gitPrefix) {
		return remote[len(gitPrefix):]
	}

	for shortcut, url := range remoteShortcuts {
		if strings.HasPrefix(remote, shortcut) {
			full := url + remote[len(shortcut):]
			if !strings.HasSuffix(full, ".git") && shortcut != "sr:" {
				full += ".git"
			}
			return full
		}
	}

	return remote
}

// initRepo creates a git repository at path and, if remote is set, points
// origin at it
func initRepo(path, remote string) error {
	repo, err := git.PlainInit(path, false)
	if err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	msg.Created("repository", ".git")

	if remote == "" {
		return nil
	}

	url := ExpandRemote(remote)
	_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{url},
	})
	if err != nil {
		return fmt.Errorf("could not add remote %s: %w", url, err)
	}
	msg.Info("origin set to %s", url)
	return nil
}
