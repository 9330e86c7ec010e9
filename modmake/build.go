package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	stegxVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	stegx := NewAppBuild("stegx", "cmd/stegx", stegxVersion)
	stegx.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", stegxVersion).
			CgoEnabled(false)
	})
	stegx.Variant("windows", "amd64")
	stegx.Variant("linux", "amd64")
	stegx.Variant("linux", "arm64")
	stegx.Variant("darwin", "amd64")
	stegx.Variant("darwin", "arm64")
	b.ImportApp(stegx)

	b.Execute()
}
