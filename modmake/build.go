package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	tinylockVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	tinylock := NewAppBuild("tinylock", "cmd/tinylock", tinylockVersion)
	tinylock.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", tinylockVersion).
			CgoEnabled(false)
	})
	tinylock.Variant("windows", "amd64")
	tinylock.Variant("linux", "amd64")
	tinylock.Variant("linux", "arm64")
	tinylock.Variant("darwin", "amd64")
	tinylock.Variant("darwin", "arm64")
	b.ImportApp(tinylock)

	b.Execute()
}
