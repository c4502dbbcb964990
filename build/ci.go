// Copyright 2016 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

//go:build none
// +build none

/*
The ci command is called from Continuous Integration scripts.

Usage: go run build/ci.go <command> <command flags/arguments>

Available commands are:

	install    [ -arch architecture ] [ -os platform ] [ packages... ] -- builds packages and executables
	test       [ -coverage ] [ -race ] [ packages... ]                 -- runs the tests
*/
package main

import (
	"flag"
	"log"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/sunyihoo/go-rosettanet/internal/build"
)

const versionPkg = "github.com/sunyihoo/go-rosettanet/internal/version"

var GOBIN, _ = filepath.Abs(filepath.Join("build", "bin"))

func executablePath(name string) string {
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	return filepath.Join(GOBIN, name)
}

func main() {
	log.SetFlags(log.Lshortfile)

	if !build.FileExist(filepath.Join("build", "ci.go")) {
		log.Fatal("this script must be run from the root of the repository")
	}
	if len(os.Args) < 2 {
		log.Fatal("need subcommand as first argument")
	}
	switch os.Args[1] {
	case "install":
		doInstall(os.Args[2:])
	case "test":
		doTest(os.Args[2:])
	default:
		log.Fatal("unknown command ", os.Args[1])
	}
}

// Compiling

func doInstall(cmdline []string) {
	var (
		arch   = flag.String("arch", "", "Architecture to cross build for")
		goos   = flag.String("os", "", "Platform to cross build for")
		static = flag.Bool("static", false, "Create statically-linked executable")
	)
	flag.CommandLine.Parse(cmdline)
	env := build.Env()
	log.Println(env)

	tc := build.GoToolchain{GOARCH: *arch, GOOS: *goos}

	// Disable CLI markdown doc generation in release builds.
	gobuild := tc.Go("build", buildFlags(env, *static, []string{"urfave_cli_no_docs"})...)

	// We use -trimpath to avoid leaking local paths into the built executables.
	gobuild.Args = append(gobuild.Args, "-trimpath", "-v")

	// Default: collect all 'main' packages in cmd/ and build those.
	packages := flag.Args()
	if len(packages) == 0 {
		packages = build.FindMainPackages("./cmd")
	}
	for _, pkg := range packages {
		args := slices.Clone(gobuild.Args)
		args = append(args, "-o", executablePath(path.Base(pkg)), pkg)
		build.MustRun(&exec.Cmd{Path: gobuild.Path, Args: args, Env: gobuild.Env})
	}
}

// buildFlags returns the go tool flags for building.
func buildFlags(env build.Environment, staticLinking bool, buildTags []string) (flags []string) {
	ld := []string{"--buildid=none"}
	if env.Commit != "" {
		ld = append(ld, "-X", versionPkg+".gitCommit="+env.Commit)
		ld = append(ld, "-X", versionPkg+".gitDate="+env.Date)
	}
	// Strip DWARF on darwin.
	if runtime.GOOS == "darwin" {
		ld = append(ld, "-s")
	}
	if staticLinking {
		buildTags = append(buildTags, "osusergo", "netgo")
	}
	flags = append(flags, "-ldflags", strings.Join(ld, " "))
	if len(buildTags) > 0 {
		flags = append(flags, "-tags", strings.Join(buildTags, ","))
	}
	return flags
}

// Running The Tests

func doTest(cmdline []string) {
	var (
		coverage = flag.Bool("coverage", false, "Whether to record code coverage")
		race     = flag.Bool("race", false, "Execute the race detector")
		short    = flag.Bool("short", false, "Pass the 'short'-flag to go test")
		verbose  = flag.Bool("v", false, "Whether to log verbosely")
	)
	flag.CommandLine.Parse(cmdline)

	tc := new(build.GoToolchain)
	gotest := tc.Go("test")

	// CI needs a bit more time for the concurrency tests.
	gotest.Args = append(gotest.Args, "-timeout=10m", "-p", "1")
	if *coverage {
		gotest.Args = append(gotest.Args, "-covermode=atomic", "-cover")
	}
	if *verbose {
		gotest.Args = append(gotest.Args, "-v")
	}
	if *race {
		gotest.Args = append(gotest.Args, "-race")
	}
	if *short {
		gotest.Args = append(gotest.Args, "-short")
	}
	packages := []string{"./..."}
	if len(flag.Args()) > 0 {
		packages = flag.Args()
	}
	gotest.Args = append(gotest.Args, packages...)
	build.MustRun(gotest)
}
