package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	strgenVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	strgen := NewAppBuild("strgen", "cmd/strgen", strgenVersion)
	strgen.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", strgenVersion).
			CgoEnabled(false)
	})
	strgen.Variant("windows", "amd64")
	strgen.Variant("windows", "arm64")
	strgen.Variant("linux", "amd64")
	strgen.Variant("linux", "arm64")
	strgen.Variant("darwin", "amd64")
	strgen.Variant("darwin", "arm64")
	b.ImportApp(strgen)

	b.Execute()
}
