package main

import (
	"fmt"
	"os/exec"
	"strings"
)

// runDoctor reports whether the external encoder is usable. Returns a
// process exit code.
func runDoctor(ffmpegPath string) int {
	binary := ffmpegPath
	if binary == "" {
		binary = "ffmpeg"
	}

	path, err := exec.LookPath(binary)
	if err != nil {
		fmt.Printf("ffmpeg: not found (%v)\n", err)
		fmt.Println("install ffmpeg, point -ffmpeg at a binary, or use -format flac")
		return 1
	}
	fmt.Printf("ffmpeg: %s\n", path)

	out, err := exec.Command(path, "-version").Output()
	if err != nil {
		fmt.Printf("ffmpeg -version failed: %v\n", err)
		return 1
	}
	line, _, _ := strings.Cut(string(out), "\n")
	fmt.Println(line)
	return 0
}
