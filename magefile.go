//go:build mage

package main

import (
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

const modulePath = "github.com/dkoosis/term2md"

// Build builds the term2md binary with version information embedded.
func Build() error {
	version := gitDescribe()
	commit := gitCommit()
	date := time.Now().UTC().Format(time.RFC3339)
	ldflags := fmt.Sprintf("-s -w -X '%s/internal/version.Version=%s' -X '%s/internal/version.CommitHash=%s' -X '%s/internal/version.BuildDate=%s'",
		modulePath, version, modulePath, commit, modulePath, date)
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", "bin/term2md", "./cmd/term2md")
}

// Test runs the test suite
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and the test suite
func Check() {
	mg.Deps(Vet, Test)
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}

func gitDescribe() string {
	out, err := exec.Command("git", "describe", "--tags", "--always", "--dirty").Output()
	if err != nil {
		return "dev"
	}
	return strings.TrimSpace(string(out))
}

func gitCommit() string {
	out, err := exec.Command("git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(out))
}
