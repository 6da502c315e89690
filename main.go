package main

import (
	"flag"
	"fmt"
	"os"
)

func main() {
	var options appOptions
	flag.StringVar(&options.configFile, "config", "", "YAML config file (defaults are used when empty)")
	flag.Var(&options.placements, "place", "build type@x,y,z or type@x,z (on the surface); repeatable")
	flag.Var(&options.removals, "remove", "demolish x,y,z; repeatable")
	flag.Float64Var(&options.days, "days", 0, "days to advance the economy after building")
	flag.StringVar(&options.glbFile, "glb", "", "write the chunk meshes to this .glb file")
	flag.StringVar(&options.previewFile, "preview", "", "write a top-down PNG preview to this file")
	flag.IntVar(&options.previewScale, "scale", 8, "pixels per column in the preview")
	flag.StringVar(&options.saveFile, "save", "", "write a save file (.zst to compress)")
	flag.BoolVar(&options.saveWorld, "save-world", true, "include the voxel grid in the save file")
	flag.StringVar(&options.loadFile, "load", "", "load a save file instead of generating terrain")
	flag.BoolVar(&options.printMap, "map", false, "print a height map")
	flag.Parse()

	if err := runApp(options, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "utuado:", err)
		os.Exit(1)
	}
}
