package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/hesusruiz/vcutils/yaml"

	"github.com/avelar/sedoc/sedoc"
)

// The default name of the output artifact. It is overwritten on every
// run; there is no append mode and no multi-file output.
const defaultOutputName = "index.html"

// sampleDocument is the input literal processed by the command. The
// document is constructed directly as an in-memory tree literal; there
// is no external serialized format.
var sampleDocument = []any{
	"doc", []any{[]any{"title", "Five Elegant Uses for Continuations"}},
	[]any{
		"sect", []any{[]any{"ref", "intro"}},
		"Continuations let a program capture the rest of its own computation as a value.",
		"This article walks through five places where that turns out to be useful.",
	},
	[]any{
		"sect", []any{[]any{"ref", "teaser"}},
		"A taste of what is coming:",
	},
	[]any{
		"code-listing", []any{},
		"(define (sum-to n)\n  (if (= n 0)\n      0\n      (+ n (sum-to (- n 1)))))",
	},
	[]any{
		"highlight", []any{[]any{"lang", "go"}},
		"func sumTo(n int) int {\n\tif n == 0 {\n\t\treturn 0\n\t}\n\treturn n + sumTo(n-1)\n}",
	},
}

// process is the main entry point of the program
func process(c *cli.Context) error {

	outputFileName := c.String("output")
	dryrun := c.Bool("dryrun")
	debug := c.Bool("debug")

	var z *zap.Logger
	var err error

	// Setup the logging system
	if debug {
		z, err = zap.NewDevelopment()
	} else {
		z, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}

	sugar := z.Sugar()
	defer sugar.Sync()

	// Read the optional configuration file
	var config *yaml.YAML
	if configFileName := c.String("config"); len(configFileName) > 0 {
		src, err := os.ReadFile(configFileName)
		if err != nil {
			sugar.Fatalw("error reading config file", "name", configFileName, "err", err)
		}
		config, err = yaml.ParseYaml(string(src))
		if err != nil {
			sugar.Fatalw("malformed config file", "name", configFileName, "err", err)
		}
	}

	if len(outputFileName) == 0 {
		outputFileName = defaultOutputName
		if config != nil {
			outputFileName = config.String("sedoc.output", defaultOutputName)
		}
	}

	// Parse the document literal into a tree
	doc, err := sedoc.ParseTree(sampleDocument)
	if err != nil {
		sugar.Fatalw("error parsing document", "err", err)
	}

	// Expand all macro tags until the tree is fully terminal
	transformer := sedoc.NewTransformer(sedoc.StdMacros(config))
	if config != nil {
		if depth, err := strconv.Atoi(config.String("sedoc.maxDepth", "")); err == nil && depth > 0 {
			transformer.SetMaxDepth(depth)
		}
	}

	expanded, err := transformer.Transform(doc)
	if err != nil {
		sugar.Fatalw("error transforming document", "err", err)
	}

	// Serialize the terminal tree
	html := sedoc.Render(expanded)
	sugar.Debugw("document rendered", "bytes", len(html))

	if dryrun {
		fmt.Printf("dry run: processed document without writing output\n")
		return nil
	}

	// Write the HTML to the output file, overwriting any existing one
	err = os.WriteFile(outputFileName, html, 0664)
	if err != nil {
		return err
	}

	fmt.Printf("generated %v\n", outputFileName)
	return nil
}

func main() {

	app := &cli.App{
		Name:     "sedoc",
		Version:  "v0.1",
		Compiled: time.Now(),
		Usage:    "process an s-expression document and produce HTML",
		Action:   process,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write html to `FILE` (default is " + defaultOutputName + ")",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "read configuration from `FILE`",
			},
			&cli.BoolFlag{
				Name:    "dryrun",
				Aliases: []string{"n"},
				Usage:   "do not generate output file, just process the document",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "run in debug mode",
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		panic(err)
	}

}
