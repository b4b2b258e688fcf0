package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirkon/ruleform/internal/form"
	"github.com/sirkon/ruleform/internal/formsio"
	"github.com/sirkon/ruleform/internal/ruleform"
)

const doc = `ruleform rewrites rule declarations of a module into ordinary functions
before the forms reach the downstream compiler`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("ruleform", flag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "%s\n\nusage: ruleform [flags] <forms.yaml>\n", doc)
		flags.PrintDefaults()
	}

	var (
		configPath string
		output     string
		format     = OutputFormatYAML
		support    form.Ref
	)
	flags.StringVar(&configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&output, "o", "", "output file, stdout when empty")
	flags.TextVar(&format, "format", format, "output format, yaml or pretty")
	flags.TextVar(&support, "support", form.Ref{}, "override the runtime support hook, module:function")

	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return 2
	}

	cfg := ruleform.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = ruleform.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("load config: %w", err))
			return 2
		}
	}
	if support != (form.Ref{}) {
		cfg.Support = support
	}

	data, err := os.ReadFile(flags.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("read forms file: %w", err))
		return 2
	}

	forms, err := formsio.Decode(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("decode forms file: %w", err))
		return 2
	}

	res := ruleform.Transform(forms, cfg, ruleform.NewFreshNames(""))

	var rendered []byte
	switch format {
	case OutputFormatYAML:
		rendered, err = formsio.Encode(res.Forms)
		if err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("encode result: %w", err))
			return 2
		}
	case OutputFormatPretty:
		rendered = []byte(res.Forms.Pretty())
	}

	if output == "" {
		if _, err := os.Stdout.Write(rendered); err != nil {
			fmt.Fprintln(os.Stderr, fmt.Errorf("write result: %w", err))
			return 2
		}
	} else if err := os.WriteFile(output, rendered, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, fmt.Errorf("write result: %w", err))
		return 2
	}

	for _, line := range ruleform.Diagnostics(res.Errors) {
		fmt.Fprintln(os.Stderr, line)
	}
	if len(res.Errors) > 0 {
		return 1
	}

	return 0
}
