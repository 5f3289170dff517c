package compileinfo

import (
	"fmt"
	"os"
	"runtime/debug"
)

// CompileInfo describes how the running binary was built, as recorded by
// the Go toolchain.
type CompileInfo struct {
	Package    string
	Version    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	commit := c.Commit
	if commit == "" {
		commit = "an unknown commit"
	}
	if c.Modified {
		commit += " (locally modified)"
	}

	return fmt.Sprintf("%s %s was built with %s from %s at %s", c.Package, c.Version, c.GoVersion, commit, c.CommitTime)
}

func Get() CompileInfo {
	out := CompileInfo{}

	z, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	out.Package = z.Path
	out.Version = z.Main.Version
	out.GoVersion = z.GoVersion
	for _, s := range z.Settings {
		switch s.Key {
		case "vcs.revision":
			out.Commit = s.Value
		case "vcs.time":
			out.CommitTime = s.Value
		case "vcs.modified":
			out.Modified = s.Value == "true"
		}
	}

	return out
}

func PrintToStdErr() {
	z := Get()
	fmt.Fprintf(os.Stderr, "%s\n", z)
}
