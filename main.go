package main

import (
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"time"

	"github.com/lonng/mjdeal/internal/deal"
	"github.com/lonng/mjdeal/internal/errutil"
	"github.com/lonng/mjdeal/internal/hooks"
	"github.com/lonng/mjdeal/internal/render"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()

	// base application info
	app.Name = "mjdeal"
	app.Author = "MaJong"
	app.Version = "0.1.0"
	app.Copyright = "majong team reserved"
	app.Usage = "shuffle a 144 tile mahjong set, roll the dice, cut the wall and deal four hands"

	// flags
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "./configs/config.toml",
			Usage: "load configuration from `FILE`",
		},
		cli.IntFlag{
			Name:  "count, n",
			Value: 1,
			Usage: "number of deals to run",
		},
		cli.Int64Flag{
			Name:  "seed",
			Usage: "random seed, 0 seeds from the clock",
		},
		cli.StringFlag{
			Name:  "format, f",
			Value: render.FormatText,
			Usage: "output format: text or json",
		},
		cli.BoolFlag{
			Name:  "sort",
			Usage: "sort every hand before printing",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug logging",
		},
		cli.BoolFlag{
			Name:  "cpuprofile",
			Usage: "enable cpu profile",
		},
	}

	app.Action = serve
	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func setup(c *cli.Context) {
	viper.SetConfigType("toml")
	viper.SetConfigFile(c.String("config"))

	viper.SetDefault("core.debug", false)
	viper.SetDefault("deal.count", 1)
	viper.SetDefault("deal.seed", 0)
	viper.SetDefault("deal.format", render.FormatText)
	viper.SetDefault("deal.sort", false)

	err := viper.ReadInConfig()

	// command line wins over the config file
	if c.IsSet("count") {
		viper.Set("deal.count", c.Int("count"))
	}
	if c.IsSet("seed") {
		viper.Set("deal.seed", c.Int64("seed"))
	}
	if c.IsSet("format") {
		viper.Set("deal.format", c.String("format"))
	}
	if c.IsSet("sort") {
		viper.Set("deal.sort", c.Bool("sort"))
	}
	if c.IsSet("debug") {
		viper.Set("core.debug", c.Bool("debug"))
	}

	log.SetFormatter(&log.TextFormatter{DisableColors: true})
	log.SetOutput(os.Stderr)
	if viper.GetBool("core.debug") {
		log.SetLevel(log.DebugLevel)
		log.AddHook(hooks.NewHook())
	}
	if err != nil {
		log.Warnf("read config %s failed, using defaults: %v", c.String("config"), err)
	}
}

func serve(c *cli.Context) error {
	setup(c)

	if c.Bool("cpuprofile") {
		stop, err := startProfile(fmt.Sprintf("cpuprofile-%d.pprof", time.Now().Unix()))
		if err != nil {
			log.Error(err)
			return cli.NewExitError(err.Error(), errutil.Code(err))
		}
		defer stop()
	}

	var (
		count = viper.GetInt("deal.count")
		seed  = viper.GetInt64("deal.seed")
		opts  = render.Options{
			Format: viper.GetString("deal.format"),
			Sort:   viper.GetBool("deal.sort"),
		}
	)

	if err := run(os.Stdout, count, seed, opts); err != nil {
		log.Error(err)
		return cli.NewExitError(err.Error(), errutil.Code(err))
	}
	return nil
}

// startProfile writes a cpu profile to filename until stop is called.
func startProfile(filename string) (stop func(), err error) {
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "cpuprofile")
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, errors.Wrap(err, "cpuprofile")
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}

func run(w io.Writer, count int, seed int64, opts render.Options) error {
	if count <= 0 {
		return errors.Wrapf(errutil.ErrIllegalParameter, "count=%d", count)
	}

	// seed 0 is resolved once here so every output can be replayed
	seed = deal.ResolveSeed(seed)
	opts.Seed = seed
	r, err := render.New(opts)
	if err != nil {
		return err
	}
	log.WithField("component", "main").Infof("dealing %d hands, seed=%d", count, seed)

	var results []*deal.Result
	if count == 1 {
		results = []*deal.Result{deal.NewEngine(deal.NewSource(seed)).Deal()}
	} else {
		results, _ = deal.Batch(count, seed)
	}

	log.WithField("component", "main").Debugf("dealt %d hands", len(results))
	return r.Render(w, results)
}
