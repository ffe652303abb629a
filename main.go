package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/guptarohit/asciigraph"
	"github.com/matt-g-everett/tweentx/api"
	"github.com/matt-g-everett/tweentx/config"
	"github.com/matt-g-everett/tweentx/frame"
	"github.com/matt-g-everett/tweentx/stream"
	"github.com/matt-g-everett/tweentx/timing"
	"github.com/matt-g-everett/tweentx/tween"
	"github.com/spf13/cobra"
)

type app struct {
	Config   *config.Config
	Client   mqtt.Client
	Streamer *stream.Streamer
	Loop     *frame.Loop
}

func newApp(configPath string) (*app, error) {
	cfg := config.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return nil, err
		}
	}

	a := new(app)
	a.Config = cfg
	a.Loop = frame.NewLoop(cfg.FrameRate)
	return a, nil
}

func (a *app) handleOnConnect(client mqtt.Client) {
	log.Println("Connected")
}

// newAnimation builds the configured animation around onUpdate.
func (a *app) newAnimation(onUpdate func(tween.Value), scheduler frame.Scheduler) (*tween.Animation, error) {
	tc, err := a.Config.Animation.Tween(onUpdate)
	if err != nil {
		return nil, err
	}

	tc.OnStart = func() { log.Printf("Animation started: %s over %s", a.Config.Animation.Timing, tc.Duration) }
	tc.OnFinish = func() { log.Println("Animation finished") }
	tc.OnCancel = func() { log.Println("Animation cancelled") }

	return tween.New(tc, scheduler), nil
}

// play starts anim on the installed frame loop and blocks until it ends or
// ctx is done.
func (a *app) play(ctx context.Context, anim *tween.Animation) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.Loop.Run(ctx)

	if err := anim.Start(); err != nil {
		return err
	}

	select {
	case <-anim.Done():
	case <-ctx.Done():
		anim.Cancel()
	}
	return nil
}

func (a *app) run(ctx context.Context, static string) error {
	renderer, err := stream.NewRenderer(a.Config.Render)
	if err != nil {
		return err
	}

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID(a.Config.Mqtt.ClientID).
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)

	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	defer a.Client.Disconnect(250)

	a.Streamer = stream.NewStreamer(a.Client, a.Config.Mqtt.Topics.Stream, a.Config.Mqtt.QoS, renderer)

	anim, err := a.newAnimation(a.Streamer.Update, frame.Install(a.Loop))
	if err != nil {
		return err
	}

	if a.Config.Listen != "" {
		go func() {
			if err := api.NewApi(anim, static).Serve(a.Config.Listen); err != nil {
				log.Printf("api: %v", err)
			}
		}()
	}

	err = a.play(ctx, anim)
	sent, failed := a.Streamer.Stats()
	log.Printf("Frames sent: %d, failed: %d", sent, failed)
	return err
}

func (a *app) preview(ctx context.Context, out io.Writer, width int) error {
	renderer, err := stream.NewRenderer(a.Config.Render)
	if err != nil {
		return err
	}

	lo, hi := 0.0, 1.0
	if rng, ok := a.Config.Animation.Range().(tween.Single); ok {
		lo, hi = rng.Start, rng.End
		if lo > hi {
			lo, hi = hi, lo
		}
	}

	p := stream.NewPreview(out, renderer, width, lo, hi)
	anim, err := a.newAnimation(p.Update, frame.Install(a.Loop))
	if err != nil {
		return err
	}

	return a.play(ctx, anim)
}

// plotCurves writes an ascii plot of each named timing function.
func plotCurves(out io.Writer, names []string, width, height int) error {
	memo := timing.NewMemoizer()
	for _, name := range names {
		lut, err := memo.Sample(name, width)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, asciigraph.Plot(lut, asciigraph.Height(height), asciigraph.Caption(name)))
		fmt.Fprintln(out)
	}
	return nil
}

func main() {
	mqtt.ERROR = log.New(os.Stdout, "", 0)

	var (
		configPath string
		static     string
		barWidth   int
		samples    int
		height     int
	)

	rootCmd := &cobra.Command{
		Use:          "tweentx",
		Short:        "stream eased animations to an ledrx device",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "YAML config file.")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "play the configured animation over MQTT",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(configPath)
			if err != nil {
				return err
			}
			log.Printf("Config: %+v", a.Config.Animation)
			return a.run(cmd.Context(), static)
		},
	}
	runCmd.Flags().StringVar(&static, "static", "client/dist", "directory served at / alongside /status")

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "play the configured animation on the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(configPath)
			if err != nil {
				return err
			}
			return a.preview(cmd.Context(), cmd.OutOrStdout(), barWidth)
		},
	}
	previewCmd.Flags().IntVar(&barWidth, "width", 40, "bar width")

	curvesCmd := &cobra.Command{
		Use:   "curves [timing...]",
		Short: "plot timing functions",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = []string{"linear", "easeIn", "easeOut", "easeInOut"}
			}
			return plotCurves(cmd.OutOrStdout(), names, samples, height)
		},
	}
	curvesCmd.Flags().IntVar(&samples, "width", 60, "samples per curve")
	curvesCmd.Flags().IntVar(&height, "height", 12, "plot height")

	listCmd := &cobra.Command{
		Use:   "timings",
		Short: "list timing functions",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range timing.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, previewCmd, curvesCmd, listCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
