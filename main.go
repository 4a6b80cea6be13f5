package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"gopkg.in/yaml.v2"

	"github.com/matt-g-everett/tweentx/api"
	"github.com/matt-g-everett/tweentx/stream"
)

type app struct {
	Config   stream.Config
	Client   mqtt.Client
	Streamer *stream.Streamer
	Logger   *slog.Logger
}

func newApp() *app {
	a := new(app)
	a.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	a.Logger.Info("connected")
}

func (a *app) run() {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		a.Logger.Error("mqtt connect failed", "err", token.Error())
		os.Exit(1)
	}
	a.Streamer.Run()
}

func (a *app) readConfig(configPath string) {
	f, err := os.Open(configPath)
	if err != nil {
		a.Logger.Error("cannot open config", "path", configPath, "err", err)
		os.Exit(1)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&a.Config); err != nil {
		a.Logger.Error("cannot parse config", "path", configPath, "err", err)
		os.Exit(1)
	}
}

func main() {
	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML config file.")
	apiAddr := flag.String("api", ":3000", "Debug API listen address.")
	flag.Parse()

	// Read the config
	a := newApp()
	a.readConfig(*configPath)
	a.Logger.Info("config loaded", "broker", a.Config.Mqtt.URL)

	options := mqtt.NewClientOptions().
		AddBroker(a.Config.Mqtt.URL).
		SetClientID("tweentx").
		SetUsername(a.Config.Mqtt.Username).
		SetPassword(a.Config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	client := mqtt.NewClient(options)

	a.Client = client
	a.Streamer = stream.NewStreamer(a.Config, client, a.Logger)

	debug := api.NewApi(a.Streamer.Show().Status, a.Logger)
	go debug.Serve(*apiAddr)

	a.run()
}
