// Command ndnlite runs the forwarder over a single broadcast link face,
// with an optional demo producer/consumer pair.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ndnlite/ndnlite/app"
	"github.com/ndnlite/ndnlite/block"
	"github.com/ndnlite/ndnlite/face"
	linkface "github.com/ndnlite/ndnlite/face/packet"
	"github.com/ndnlite/ndnlite/fw"
	"github.com/ndnlite/ndnlite/internal/config"
	"github.com/ndnlite/ndnlite/log"
	"github.com/ndnlite/ndnlite/ndn"
	"github.com/ndnlite/ndnlite/ndn/packet"
	"github.com/ndnlite/ndnlite/ndn/sign"
)

var runDemo bool

var rootCmd = &cobra.Command{
	Use:     "ndnlite [config-file]",
	Short:   "ndnlite - a Named-Data Networking forwarder for a single broadcast link",
	Args:    cobra.MaximumNArgs(1),
	Version: "0.1.0",
	RunE:    run,
}

func init() {
	rootCmd.Flags().BoolVar(&runDemo, "demo", false, "run a demo echo producer and consumer alongside the forwarder")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if len(args) == 1 {
		loaded, err := config.Load(args[0])
		if err != nil {
			return err
		}
		cfg = loaded
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)

	forwarder := fw.New()

	lf, err := openLinkFace(cfg)
	if err != nil {
		return err
	}
	if _, err := forwarder.AddLinkFace(lf); err != nil {
		return fmt.Errorf("ndnlite: opening link face: %w", err)
	}

	stop := make(chan struct{})
	go forwarder.Run(stop)
	log.Info(forwarder, "forwarder started", "link", cfg.Link, "mtu", cfg.MTU)

	if runDemo {
		if err := runDemoApp(forwarder, cfg); err != nil {
			return err
		}
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	received := <-sigCh
	log.Info(forwarder, "received signal, exiting", "signal", received)

	close(stop)
	return lf.Close()
}

// openLinkFace opens the configured LINK face: a real AF_PACKET broadcast
// socket when cfg.Link names an interface, otherwise an in-memory
// loopback face for local testing without root.
func openLinkFace(cfg *config.Config) (face.LinkFace, error) {
	if cfg.Link == "" {
		return linkface.NewLoopbackLinkFace(cfg.MTU), nil
	}
	return linkface.NewAFPacketLinkFace(cfg.Link, cfg.MTU)
}

// runDemoApp starts a tiny echo producer under /ndnlite/echo and a
// consumer that immediately expresses an Interest against it, exercising
// ExpressInterest/RegisterPrefix/PutData end to end.
func runDemoApp(forwarder *fw.Forwarder, cfg *config.Config) error {
	echoPrefix, _ := ndn.NameFromURI("/ndnlite/echo")

	producer, err := app.New(forwarder)
	if err != nil {
		return fmt.Errorf("ndnlite: demo producer: %w", err)
	}
	err = producer.RegisterPrefix(echoPrefix, func(interest *block.Shared) app.Disposition {
		name, err := packet.InterestName(interest.Bytes())
		if err != nil {
			return app.Continue
		}
		data, err := packet.CreateData(name, packet.NoMetaInfo, []byte("echo"), sign.NewDigestSha256Signer())
		if err != nil {
			log.Warn(forwarder, "demo producer: failed to sign reply", "err", err)
			return app.Continue
		}
		producer.PutData(block.New(data))
		return app.Continue
	})
	if err != nil {
		return fmt.Errorf("ndnlite: demo producer: registering %s: %w", echoPrefix.String(), err)
	}
	go producer.Run(make(chan struct{}))

	consumer, err := app.New(forwarder)
	if err != nil {
		return fmt.Errorf("ndnlite: demo consumer: %w", err)
	}
	go func() {
		target, _ := ndn.NameFromURI("/ndnlite/echo/hello")
		_ = consumer.ExpressInterest(target, cfg.DefaultLifetimeMs,
			func(name ndn.Name, data *block.Shared) app.Disposition {
				content, _ := packet.DataContent(data.Bytes())
				log.Info(consumer, "demo consumer: got data", "name", name.String(), "content", string(content))
				return app.Stop
			},
			func(name ndn.Name) app.Disposition {
				log.Warn(consumer, "demo consumer: timed out", "name", name.String())
				return app.Stop
			},
		)
		consumer.Run(make(chan struct{}))
	}()
	return nil
}
