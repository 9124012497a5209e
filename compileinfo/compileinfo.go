// Package compileinfo reports the VCS state a binary was built from, as
// recorded by the Go toolchain.
package compileinfo

import (
	"fmt"
	"runtime/debug"
)

type CompileInfo struct {
	Package    string
	GoVersion  string
	Commit     string
	CommitTime string
	Modified   bool
}

func (c CompileInfo) String() string {
	mod := ""
	if c.Modified {
		mod = " Files in the repo were modified after that commit."
	}

	return fmt.Sprintf("This %s binary was built with %s at commit %v at time %v.%s", c.Package, c.GoVersion, c.Commit, c.CommitTime, mod)
}

// Version is a one-word form of the commit, suitable for a --version flag.
// Binaries built outside a checkout report "devel".
func (c CompileInfo) Version() string {
	if c.Commit == "" {
		return "devel"
	}

	v := c.Commit
	if len(v) > 12 {
		v = v[:12]
	}
	if c.Modified {
		v += "-dirty"
	}

	return v
}

func Get() CompileInfo {
	out := CompileInfo{}

	z, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	return fromBuildInfo(z)
}

func fromBuildInfo(z *debug.BuildInfo) CompileInfo {
	out := CompileInfo{
		GoVersion: z.GoVersion,
		Package:   z.Path,
	}

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
