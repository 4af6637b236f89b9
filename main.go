// Command assetgen generates the game's build-time assets: eight short
// sound effects encoded to opus (or flac), and the manifest PNG icons
// rasterized from the source SVG.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"assetgen/cue"
	"assetgen/encoder"
	"assetgen/icon"
	"assetgen/log"
)

var version = "dev"

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	outFlag := flag.String("out", envOr("ASSETGEN_OUT", "public/assets/sounds"), "output directory for sound files")
	svgFlag := flag.String("svg", "public/icon.svg", "source SVG for icon generation")
	iconsOutFlag := flag.String("icons-out", "public", "output directory for PNG icons")
	formatFlag := flag.String("format", "opus@64", "audio format: opus@<kbps> or flac")
	ffmpegFlag := flag.String("ffmpeg", envOr("ASSETGEN_FFMPEG", ""), "encoder binary (default: ffmpeg from PATH)")
	jobsFlag := flag.Int("jobs", 1, "parallel encoder processes")
	soundsFlag := flag.Bool("sounds", true, "generate sound effects")
	iconsFlag := flag.Bool("icons", true, "generate PNG icons")
	doctorFlag := flag.Bool("doctor", false, "check encoder availability and exit")
	versionFlag := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println("assetgen " + version)
		return
	}
	if *doctorFlag {
		os.Exit(runDoctor(*ffmpegFlag))
	}

	exit := 0

	// The icon step fails independently of the sound step: a broken SVG
	// must not block the audio batch.
	if *iconsFlag {
		if err := runIcons(*svgFlag, *iconsOutFlag); err != nil {
			log.Errorf("icon generation failed: %v", err)
			exit = 1
		}
	}

	if *soundsFlag {
		if err := runSounds(*outFlag, *formatFlag, *ffmpegFlag, *jobsFlag); err != nil {
			log.Errorf("sound generation failed: %v", err)
			exit = 1
		}
	}

	os.Exit(exit)
}

func runIcons(svgPath, outDir string) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", outDir, err)
	}
	return icon.Generate(svgPath, outDir)
}

func runSounds(dir, format, ffmpegPath string, jobs int) error {
	enc, err := newEncoder(format, ffmpegPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	batch := make([]encoder.Job, 0, len(cue.All))
	for _, c := range cue.All {
		batch = append(batch, encoder.Job{
			Name:    c.Name,
			Samples: c.Waveform(),
			File:    c.Filename(enc.Ext()),
		})
	}

	failed, err := encoder.ExportAll(dir, enc, batch, jobs)
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d sounds failed to encode", failed, len(batch))
	}
	log.Infof("all %d sound effects written to %s", len(batch), dir)
	return nil
}

// newEncoder parses a -format value like "opus@64" or "flac".
func newEncoder(format, ffmpegPath string) (encoder.Encoder, error) {
	if format == "flac" {
		return encoder.NewFlac(), nil
	}
	if rest, ok := strings.CutPrefix(format, "opus@"); ok {
		kbps, err := strconv.Atoi(rest)
		if err != nil || kbps <= 0 {
			return nil, fmt.Errorf("bad bitrate in format %q", format)
		}
		return encoder.NewFFmpeg(ffmpegPath, kbps)
	}
	return nil, fmt.Errorf("unknown format %q (want opus@<kbps> or flac)", format)
}
