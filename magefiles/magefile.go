//go:build mage

// Цели сборки сервера портфолио.
//
//	mage build    собрать server и portfolioctl в bin/
//	mage test     прогнать тесты с -race
//	mage lint     go vet + golangci-lint
//	mage migrate  применить миграции через portfolioctl
//	mage seed     наполнить базу из seed.yaml
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binDir = "bin"

var binaries = map[string]string{
	"server":       "./cmd/server",
	"portfolioctl": "./cmd/portfolioctl",
}

// Build собирает бинарники в bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return err
	}
	for name, pkg := range binaries {
		if err := sh.RunV("go", "build", "-o", filepath.Join(binDir, name), pkg); err != nil {
			return err
		}
	}
	return nil
}

func Test() error {
	return sh.RunV("go", "test", "-race", "-count=1", "./...")
}

// Lint запускает go vet и golangci-lint.
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	return sh.RunV("golangci-lint", "run", "./...")
}

// Migrate применяет миграции к базе из DATABASE_URL.
func Migrate() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, "portfolioctl"), "migrate")
}

// Seed наполняет сайт содержимым из seed.yaml.
func Seed() error {
	mg.Deps(Migrate)
	return sh.RunV(filepath.Join(binDir, "portfolioctl"), "seed", "--file", "seed.yaml")
}

// Clean удаляет артефакты сборки.
func Clean() error {
	return os.RemoveAll(binDir)
}
