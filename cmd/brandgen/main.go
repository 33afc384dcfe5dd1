package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/baremoney/brandgen"
	"github.com/baremoney/brandgen/utils"
)

// Version indicates the current build version.
var Version = "dev"

func main() {
	log.SetFlags(0)

	app := &cli.Command{
		Name:    "brandgen",
		Usage:   "generate the brand asset set (SVG, PNG, ICO) from a procedural logo definition",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Value:   "brand",
				Usage:   "Output directory",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML brand definition (defaults are compiled in)",
			},
			&cli.StringFlag{
				Name:  "font",
				Usage: "TTF font path or URL used for the wordmark",
			},
			&cli.StringFlag{
				Name:  "asset",
				Value: "all",
				Usage: "Asset group to generate: all, svg, png or favicon",
			},
		},
		Action: run,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := brandgen.DefaultConfig()
	if path := cmd.String("config"); path != "" {
		var err error
		if cfg, err = brandgen.LoadConfig(path); err != nil {
			return err
		}
	}
	if font := cmd.String("font"); font != "" {
		cfg.FontSource = font
	}

	gen, err := brandgen.NewGenerator(cfg)
	if err != nil {
		return err
	}

	var spinner *utils.Spinner
	if term.IsTerminal(int(os.Stderr.Fd())) {
		msg := fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ BRANDGEN", utils.StatusMessage),
			utils.DecorateText("is rendering the asset set...", utils.DefaultMessage))
		spinner = utils.NewSpinner(msg, time.Millisecond*100)
		spinner.Start()
		defer spinner.Stop()
	}

	outDir := cmd.String("out")
	start := time.Now()

	switch asset := cmd.String("asset"); asset {
	case "all":
		err = gen.Process(outDir)
	case "svg":
		err = writeGroup(outDir, gen.WriteSVGs)
	case "png":
		err = writeGroup(outDir, gen.WritePNGs)
	case "favicon":
		err = writeGroup(outDir, gen.WriteFavicons)
	default:
		err = fmt.Errorf("unknown asset group %q, expected all, svg, png or favicon", asset)
	}
	if err != nil {
		return err
	}

	if spinner != nil {
		spinner.Stop()
	}
	log.Printf("%s %s",
		utils.DecorateText("✔ Assets written to "+outDir, utils.SuccessMessage),
		utils.DecorateText("in "+utils.FormatTime(time.Since(start)), utils.DefaultMessage))
	return nil
}

// writeGroup runs a single asset group, making sure the destination exists
// the same way the full pipeline does.
func writeGroup(outDir string, fn func(string) error) error {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return err
	}
	return fn(outDir)
}
