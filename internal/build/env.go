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

package build

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// These flags override values in build env.
	// 这些标志覆盖构建环境中的值。
	GitCommitFlag = flag.String("git-commit", "", `Overrides git commit hash embedded into executables`)
	GitBranchFlag = flag.String("git-branch", "", `Overrides git branch being built`)
	GitTagFlag    = flag.String("git-tag", "", `Overrides git tag being built`)
)

var commitRe = regexp.MustCompile("^([0-9a-f]{40})$")

// Environment contains metadata provided by the build environment.
// Environment 包含构建环境提供的元数据。
type Environment struct {
	CI                        bool
	Name                      string // name of the environment
	Repo                      string // name of GitHub repo
	Commit, Date, Branch, Tag string // Git info
	IsPullRequest             bool
}

func (env Environment) String() string {
	return fmt.Sprintf("%s env (commit:%s date:%s branch:%s tag:%s pr:%t)",
		env.Name, env.Commit, env.Date, env.Branch, env.Tag, env.IsPullRequest)
}

// Env returns metadata about the current CI environment, falling back to LocalEnv
// if not running on CI.
// Env 返回当前 CI 环境的元数据，如果未运行在 CI 上，则回退到 LocalEnv。
func Env() Environment {
	if os.Getenv("GITHUB_ACTIONS") != "true" {
		return LocalEnv()
	}
	commit := os.Getenv("GITHUB_SHA")
	env := Environment{
		CI:            true,
		Name:          "github-actions",
		Repo:          os.Getenv("GITHUB_REPOSITORY"),
		Commit:        commit,
		Date:          getDate(commit),
		IsPullRequest: os.Getenv("GITHUB_EVENT_NAME") == "pull_request",
	}
	switch os.Getenv("GITHUB_REF_TYPE") {
	case "branch":
		env.Branch = os.Getenv("GITHUB_REF_NAME")
	case "tag":
		env.Tag = os.Getenv("GITHUB_REF_NAME")
	}
	return applyEnvFlags(env)
}

// LocalEnv returns build environment metadata gathered from git.
// LocalEnv 返回从 git 收集的构建环境元数据。
func LocalEnv() Environment {
	env := applyEnvFlags(Environment{Name: "local", Repo: "sunyihoo/go-rosettanet"})

	head := readGitFile("HEAD")
	if fields := strings.Fields(head); len(fields) == 2 {
		head = fields[1]
	} else {
		// Detached head, the file holds the commit hash itself.
		// 分离头指针状态，文件中直接是提交哈希。
		if commit := commitRe.FindString(head); commit != "" && env.Commit == "" {
			env.Commit = commit
			env.Date = getDate(env.Commit)
		}
		return env
	}
	if env.Commit == "" {
		env.Commit = readGitFile(head)
	}
	env.Date = getDate(env.Commit)
	if env.Branch == "" && head != "HEAD" {
		env.Branch = strings.TrimPrefix(head, "refs/heads/")
	}
	if info, err := os.Stat(".git/objects"); err == nil && info.IsDir() && env.Tag == "" {
		env.Tag = firstLine(RunGit("tag", "-l", "--points-at", "HEAD"))
	}
	return env
}

func firstLine(s string) string {
	return strings.Split(s, "\n")[0]
}

func getDate(commit string) string {
	if commit == "" {
		return ""
	}
	out := RunGit("show", "-s", "--format=%ct", commit)
	if out == "" {
		return ""
	}
	date, err := strconv.ParseInt(strings.TrimSpace(out), 10, 64)
	if err != nil {
		panic(fmt.Sprintf("failed to parse git commit date: %v", err))
	}
	return time.Unix(date, 0).Format("20060102")
}

func applyEnvFlags(env Environment) Environment {
	if !flag.Parsed() {
		panic("you need to call flag.Parse before Env or LocalEnv")
	}
	if *GitCommitFlag != "" {
		env.Commit = *GitCommitFlag
	}
	if *GitBranchFlag != "" {
		env.Branch = *GitBranchFlag
	}
	if *GitTagFlag != "" {
		env.Tag = *GitTagFlag
	}
	return env
}
