package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/bodgit/mii"
	"github.com/bodgit/mii/internal/config"
	"github.com/bodgit/mii/internal/logging"
	"github.com/bodgit/mii/internal/picker"
	"github.com/bodgit/mii/render"
	"github.com/bodgit/plumbing"
	"github.com/hashicorp/go-multierror"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	fs  = afero.NewOsFs()
	cfg = config.Default()
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func writeRecord(w io.Writer, f render.Format, name string, m *mii.Mii, header bool) error {
	if header && f != render.FormatJSON {
		if _, err := fmt.Fprintf(w, "==> %s <==\n", name); err != nil {
			return err
		}
	}
	return render.Write(w, f, m)
}

func interactive(in io.Reader, out io.Writer, dir string, f render.Format) error {
	picker.Banner(out)

	files, err := picker.Scan(fs, dir)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		fmt.Fprintln(out, "----------- There are no files in the")
		fmt.Fprintln(out, "            current working directory")
		fmt.Fprintln(out, "            that  match  any  of  the")
		fmt.Fprintln(out, "            accepted         formats!")
		return nil
	}

	p := picker.New(in, out)
	p.Menu(files)

	i, err := p.Choose(len(files))
	if err != nil {
		return err
	}

	name := filepath.Join(dir, files[i])
	logging.Info("PICK", "Selected", name)

	m, err := mii.Open(name)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Reading Data:")

	return render.Write(out, f, m)
}

func show(w io.Writer, names []string, f render.Format) error {
	for _, name := range names {
		m, err := mii.Open(name)
		if err != nil {
			return err
		}

		if err = writeRecord(w, f, name, m, len(names) > 1); err != nil {
			return err
		}
	}

	return nil
}

func dump(dir, output string, f render.Format, verbose bool) (err error) {
	files, err := picker.Scan(fs, dir)
	if err != nil {
		return err
	}

	var w io.WriteCloser = plumbing.NopWriteCloser(os.Stdout)
	if output != "" {
		if w, err = fs.Create(output); err != nil {
			return err
		}
	}
	defer func() {
		if cerr := w.Close(); cerr != nil {
			err = multierror.Append(err, cerr)
		}
	}()

	var pb *progressbar.ProgressBar
	if verbose {
		pb = progressbar.Default(int64(len(files)), "decoding")
	}

	var result *multierror.Error
	decoded := 0
	for _, file := range files {
		name := filepath.Join(dir, file)

		m, oerr := mii.Open(name)
		if oerr != nil {
			logging.Error("DUMP", oerr)
			result = multierror.Append(result, oerr)
		} else if err = writeRecord(w, f, name, m, true); err != nil {
			return err
		} else {
			decoded++
		}

		if pb != nil {
			_ = pb.Add(1)
		}
	}

	logging.Notice("DUMP", "Decoded", decoded, "of", len(files), "files in", dir)

	return result.ErrorOrNil()
}

func directory(c *cli.Context) string {
	if c.IsSet("directory") {
		return c.Path("directory")
	}
	return cfg.Directory
}

func format(c *cli.Context) (render.Format, error) {
	if c.IsSet("format") {
		return render.ParseFormat(c.String("format"))
	}
	return render.ParseFormat(cfg.Format)
}

func setup(c *cli.Context) error {
	loaded, err := config.Load(fs, c.Path("config"))
	if err != nil {
		return err
	}
	cfg = *loaded

	level := cfg.LogLevel
	if c.IsSet("log-level") {
		level = c.Int("log-level")
	}
	logging.SetLevel(level)

	switch cfg.Color {
	case config.ColorAlways:
		logging.SetColor(true)
	case config.ColorNever:
		logging.SetColor(false)
	}

	return nil
}

func main() {
	app := cli.NewApp()

	app.Name = "mii"
	app.Usage = "Wii Mii data analyzer"
	app.Version = fmt.Sprintf("%s, commit %s, built at %s", version, commit, date)

	app.Flags = []cli.Flag{
		&cli.PathFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "read settings from `FILE`",
		},
		&cli.PathFlag{
			Name:    "directory",
			Aliases: []string{"d"},
			Usage:   "look for files in `DIRECTORY`",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "output `FORMAT`, one of text, table or json",
		},
		&cli.IntFlag{
			Name:  "log-level",
			Usage: "log verbosity from 0 (silent) to 4 (info)",
		},
	}
	app.Before = setup

	app.Action = func(c *cli.Context) error {
		f, err := format(c)
		if err != nil {
			return err
		}

		return interactive(os.Stdin, os.Stdout, directory(c), f)
	}

	app.Commands = []*cli.Command{
		{
			Name:        "show",
			Usage:       "Decode and print the Mii held in each FILE",
			Description: "",
			ArgsUsage:   "FILE...",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.Name, 1)
				}

				f, err := format(c)
				if err != nil {
					return err
				}

				return show(os.Stdout, c.Args().Slice(), f)
			},
		},
		{
			Name:        "dump",
			Usage:       "Decode and print every Mii found in the directory",
			Description: "",
			Action: func(c *cli.Context) error {
				f, err := format(c)
				if err != nil {
					return err
				}

				return dump(directory(c), c.Path("output"), f, c.Bool("verbose"))
			},
			Flags: []cli.Flag{
				&cli.PathFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "write to `FILE` instead of standard output",
				},
				&cli.BoolFlag{
					Name:    "verbose",
					Aliases: []string{"v"},
					Usage:   "increase verbosity",
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
